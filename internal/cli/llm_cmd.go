package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhennig/kalender/internal/cli/formatter"
)

func newLLMCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llm",
		Short: "Inspect the text generation backend",
	}

	cmd.AddCommand(newLLMStatusCmd(app))

	return cmd
}

func newLLMStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and reachability of the AI backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := app.LLMConfig

			fmt.Fprintln(out, formatter.Header("AI Backend"))
			fmt.Fprintf(out, "%s %s\n", formatter.Bold("Model:"), cfg.Model)
			fmt.Fprintf(out, "%s %s\n", formatter.Bold("Base URL:"), cfg.BaseURL)

			if app.LLMClient == nil {
				fmt.Fprintf(out, "%s %s\n", formatter.Bold("API Key:"),
					formatter.StyleYellow.Render("not configured — generation uses example ideas"))
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", formatter.Bold("API Key:"), formatter.StyleGreen.Render("configured"))

			spinner := formatter.NewSpinner(out, "checking availability...")
			spinner.Start()
			available := app.LLMClient.Available(context.Background())
			spinner.Stop()

			if available {
				fmt.Fprintf(out, "%s %s\n", formatter.Bold("Backend:"), formatter.StyleGreen.Render("reachable"))
			} else {
				fmt.Fprintf(out, "%s %s\n", formatter.Bold("Backend:"), formatter.StyleRed.Render("not reachable"))
			}
			return nil
		},
	}
}
