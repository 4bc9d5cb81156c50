package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mhennig/kalender/internal/cli/formatter"
	"github.com/mhennig/kalender/internal/domain"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage prompt themes",
	}

	cmd.AddCommand(
		newThemeAddCmd(app),
		newThemeListCmd(app),
		newThemeShowCmd(app),
		newThemeEditCmd(app),
		newThemeRemoveCmd(app),
	)

	return cmd
}

func newThemeAddCmd(app *App) *cobra.Command {
	var name, prompt string
	var examples []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := &domain.Theme{
				ID:       uuid.New().String(),
				Name:     name,
				Prompt:   prompt,
				Examples: examples,
			}

			if name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name and --prompt are required in non-interactive mode")
				}
				if err := runThemeForm(theme); err != nil {
					return err
				}
			}

			if err := app.Settings.AddTheme(context.Background(), theme); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created theme %q with %d example ideas\n",
				theme.Name, len(theme.TrimmedExamples()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Theme name")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Prompt template with {platform}, {post_type} and {theme} placeholders")
	cmd.Flags().StringArrayVar(&examples, "example", nil, "Example idea (repeatable)")

	return cmd
}

func newThemeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := app.Settings.Themes(context.Background())
			if err != nil {
				return err
			}
			if len(themes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No themes found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatThemeList(themes))
			return nil
		},
	}
}

func newThemeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a theme's prompt and example ideas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := app.Settings.Theme(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatThemeDetail(theme))
			return nil
		},
	}
}

func newThemeEditCmd(app *App) *cobra.Command {
	var prompt string
	var examples []string

	cmd := &cobra.Command{
		Use:   "edit NAME",
		Short: "Edit a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			theme, err := app.Settings.Theme(ctx, args[0])
			if err != nil {
				return err
			}

			flagged := cmd.Flags().Changed("prompt") || cmd.Flags().Changed("example")
			if flagged {
				if cmd.Flags().Changed("prompt") {
					theme.Prompt = prompt
				}
				if cmd.Flags().Changed("example") {
					theme.Examples = examples
				}
			} else {
				if !app.interactive() {
					return fmt.Errorf("--prompt or --example is required in non-interactive mode")
				}
				if err := runThemeForm(theme); err != nil {
					return err
				}
			}

			if err := app.Settings.UpdateTheme(ctx, theme); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated theme %q\n", theme.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "New prompt template")
	cmd.Flags().StringArrayVar(&examples, "example", nil, "Replacement example idea (repeatable)")

	return cmd
}

func newThemeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.RemoveTheme(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed theme %q\n", args[0])
			return nil
		},
	}
}

// packLines joins examples for the multi-line form field; splitLines is
// its inverse.
func packLines(examples []string) string {
	return strings.Join(examples, "\n")
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
