package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fift2939-create/ather1/internal/locale"
)

func newTUICmd(app *App, lang *languageFlag) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, lang.Language())
		},
	}
}

func runTUI(app *App, lang locale.Language) error {
	p := tea.NewProgram(newAppModel(app, lang), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
