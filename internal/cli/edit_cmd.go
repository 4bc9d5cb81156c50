package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mhennig/kalender/internal/domain"
)

// editKinds maps the edit argument to its option kind.
var editKinds = map[string]domain.OptionKind{
	"platform": domain.KindPlatform,
	"format":   domain.KindFormat,
	"status":   domain.KindStatus,
	"topic":    domain.KindTopic,
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit LIST",
		Short: "Edit an option list interactively (platform|format|status|topic)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := editKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown list %q, expected platform, format, status or topic", args[0])
			}
			if !app.interactive() {
				return fmt.Errorf("edit requires an interactive terminal")
			}

			program := tea.NewProgram(newEditorModel(app, kind))
			_, err := program.Run()
			return err
		},
	}
}
