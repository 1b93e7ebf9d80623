package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
)

func newConfigCmd(app *App, lang *languageFlag) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration with the API key hidden",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(app.Config.Redacted())
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, string(data))

			if err := app.Config.RequireCredential(lang.Language()); err != nil {
				fmt.Fprintln(w)
				printSetupSteps(w, err)
				return nil
			}
			fmt.Fprintln(w, formatter.Dim("credential: configured"))
			return nil
		},
	}
}
