package cli

import (
	"github.com/spf13/cobra"

	"github.com/fift2939-create/ather1/internal/drafting"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/logger"
)

// App holds what the commands need: the loaded configuration, loggers and
// the factory for drafting services.
type App struct {
	Config llm.Config

	// Log receives command and server logs. TUILog is used while the
	// terminal UI owns the screen; it usually points at a file or nowhere.
	Log    *logger.Logger
	TUILog *logger.Logger

	// Drafters overrides how drafting services are built. Nil means real
	// provider clients.
	Drafters drafting.DrafterFactory

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// drafters builds drafting services for cfg, logging calls to log when
// the configuration asks for it.
func (a *App) drafters(cfg llm.Config, log *logger.Logger) (drafting.Drafters, error) {
	if a.Drafters != nil {
		return a.Drafters(cfg)
	}
	return drafting.NewDrafterFactory(a.observer(cfg, log))(cfg)
}

func (a *App) observer(cfg llm.Config, log *logger.Logger) llm.Observer {
	if cfg.LogCalls && log != nil {
		return llm.NewLogObserver(log)
	}
	return llm.NoopObserver{}
}

func (a *App) log() *logger.Logger {
	if a.Log == nil {
		return logger.Nop()
	}
	return a.Log
}

// NewRootCmd creates the top-level "athar" command. Without arguments on a
// terminal it opens the interactive UI.
func NewRootCmd(app *App) *cobra.Command {
	lang := newLanguageFlag(app.Config.Language)

	root := &cobra.Command{
		Use:          "athar",
		Short:        "Draft humanitarian project proposals with an AI service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app, lang.Language())
			}
			return cmd.Help()
		},
	}
	root.PersistentFlags().Var(lang, "lang", "output language (ar or en)")

	root.AddCommand(
		newTUICmd(app, lang),
		newIdeasCmd(app, lang),
		newDraftCmd(app, lang),
		newBudgetCmd(lang),
		newExportCmd(app, lang),
		newServeCmd(app),
		newConfigCmd(app, lang),
	)

	return root
}
