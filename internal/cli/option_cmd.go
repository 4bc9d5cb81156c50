package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhennig/kalender/internal/cli/formatter"
	"github.com/mhennig/kalender/internal/domain"
)

// optionListTitles maps each option kind to its display heading.
var optionListTitles = map[domain.OptionKind]string{
	domain.KindPlatform: "Plattformen",
	domain.KindFormat:   "Content-Formate",
	domain.KindStatus:   "Status",
	domain.KindTopic:    "Themen",
}

// newOptionCmd builds the shared command tree for one option list. All
// four lists (platform, format, status, topic) get identical
// add/remove/list subcommands.
func newOptionCmd(app *App, use, short string, kind domain.OptionKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.AddCommand(
		newOptionAddCmd(app, kind),
		newOptionRemoveCmd(app, kind),
		newOptionListCmd(app, kind),
	)

	return cmd
}

func newOptionAddCmd(app *App, kind domain.OptionKind) *cobra.Command {
	return &cobra.Command{
		Use:   "add VALUE",
		Short: "Append a value to the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strings.TrimSpace(args[0])
			if err := app.Settings.AddOption(context.Background(), kind, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", value)
			return nil
		},
	}
}

func newOptionRemoveCmd(app *App, kind domain.OptionKind) *cobra.Command {
	var at int

	cmd := &cobra.Command{
		Use:   "remove [VALUE]",
		Short: "Remove a value by name or by list position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if cmd.Flags().Changed("at") {
				if len(args) > 0 {
					return fmt.Errorf("give either a value or --at, not both")
				}
				if at < 1 {
					return fmt.Errorf("--at positions start at 1")
				}
				removed, err := app.Settings.RemoveOptionAt(ctx, kind, at-1)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", removed)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a value or --at is required")
			}
			value := strings.TrimSpace(args[0])
			if err := app.Settings.RemoveOption(ctx, kind, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", value)
			return nil
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "One-based list position to remove")

	return cmd
}

func newOptionListCmd(app *App, kind domain.OptionKind) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the list in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := app.Settings.Options(context.Background(), kind)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptionList(optionListTitles[kind], values))
			return nil
		},
	}
}
