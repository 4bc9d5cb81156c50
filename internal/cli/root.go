// Package cli implements the kalender command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mhennig/kalender/internal/domain"
	"github.com/mhennig/kalender/internal/llm"
	"github.com/mhennig/kalender/internal/service"
)

// App holds the services and environment used by CLI commands.
type App struct {
	Settings service.SettingsService
	Calendar service.CalendarService

	// LLMConfig describes the configured text generation backend;
	// LLMClient is nil when no API key is configured.
	LLMConfig llm.Config
	LLMClient llm.Client

	// IsInteractive reports whether stdin is a terminal. Wizards and
	// the list editor require it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "kalender" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kalender",
		Short: "Content calendar generator for social media planning",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newOptionCmd(app, "platform", "Manage the platform list", domain.KindPlatform),
		newOptionCmd(app, "format", "Manage the content format list", domain.KindFormat),
		newOptionCmd(app, "status", "Manage the planning status list", domain.KindStatus),
		newOptionCmd(app, "topic", "Manage the topic list", domain.KindTopic),
		newThemeCmd(app),
		newEditCmd(app),
		newLLMCmd(app),
	)

	return root
}
