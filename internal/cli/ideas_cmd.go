package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/drafting"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
)

func newIdeasCmd(app *App, lang *languageFlag) *cobra.Command {
	var vision, country string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Generate four project ideas for a vision and country",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := lang.Language()
			d, err := prepareDrafters(cmd, app, l)
			if err != nil {
				return err
			}

			stop := startSpinner(cmd, app, l.Labels().LoadingContext)
			ideas, err := d.Ideas.GenerateIdeas(cmd.Context(), vision, country, l)
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ideas)
			}
			fmt.Fprintln(out, formatter.FormatIdeas(ideas, l, -1))
			return nil
		},
	}

	cmd.Flags().StringVar(&vision, "vision", "", "project vision or description (required)")
	cmd.Flags().StringVar(&country, "country", "", "target country (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the ideas as JSON")
	return cmd
}

// prepareDrafters checks the credential and builds the drafting services.
// A missing credential prints the setup steps before failing.
func prepareDrafters(cmd *cobra.Command, app *App, lang locale.Language) (drafting.Drafters, error) {
	cfg := app.Config
	if err := cfg.RequireCredential(lang); err != nil {
		printSetupSteps(cmd.ErrOrStderr(), err)
		return drafting.Drafters{}, err
	}
	return app.drafters(cfg, app.log())
}

func printSetupSteps(w io.Writer, err error) {
	var cfgErr *llm.ConfigurationError
	if !errors.As(err, &cfgErr) {
		return
	}
	fmt.Fprintln(w, formatter.StyleYellow.Render(cfgErr.Title))
	for _, step := range cfgErr.Steps {
		fmt.Fprintln(w, "  "+step)
	}
}

// startSpinner shows progress on stderr when attached to a terminal.
func startSpinner(cmd *cobra.Command, app *App, message string) func() {
	if app.IsInteractive == nil || !app.IsInteractive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}
