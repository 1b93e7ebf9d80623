package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/domain"
)

func newDraftCmd(app *App, lang *languageFlag) *cobra.Command {
	var idea domain.ProjectIdea
	var country, categories, out string

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft a full proposal and budget for one idea",
		Long: `Draft a full proposal and budget for one idea.

With --out the proposal is saved as JSON for "athar budget" and
"athar export"; otherwise it is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := lang.Language()
			d, err := prepareDrafters(cmd, app, l)
			if err != nil {
				return err
			}

			stop := startSpinner(cmd, app, l.Labels().LoadingProposal)
			p, err := d.Proposals.DraftProposal(cmd.Context(), idea, country, l, domain.ParseCategories(categories))
			stop()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				if err := writeProposal(out, *p); err != nil {
					return err
				}
				fmt.Fprintln(w, formatter.Success(fmt.Sprintf("%s %s", l.Labels().Exported, out)))
				fmt.Fprintln(w, formatter.FormatGrandTotal(*p, l))
				return nil
			}

			fmt.Fprintln(w, formatter.FormatNarrative(*p, l))
			fmt.Fprintln(w)
			fmt.Fprintln(w, formatter.FormatBudget(*p, l, -1))
			return nil
		},
	}

	cmd.Flags().StringVar(&idea.Name, "name", "", "idea name (required)")
	cmd.Flags().StringVar(&idea.Description, "description", "", "idea description")
	cmd.Flags().StringVar(&idea.TargetGroup, "target-group", "", "idea target group")
	cmd.Flags().StringVar(&idea.Sector, "sector", "", "idea sector")
	cmd.Flags().StringVar(&country, "country", "", "target country (required)")
	cmd.Flags().StringVar(&categories, "categories", "", "comma separated budget categories (default: language set)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the proposal JSON to this file")
	return cmd
}
