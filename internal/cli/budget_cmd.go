package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/domain"
)

func newBudgetCmd(lang *languageFlag) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Inspect or edit the budget of a saved proposal",
	}
	cmd.AddCommand(
		newBudgetShowCmd(lang),
		newBudgetSetCmd(lang),
	)
	return cmd
}

func newBudgetShowCmd(lang *languageFlag) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the budget grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProposal(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBudget(p, lang.Language(), -1))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "proposal JSON file (required)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newBudgetSetCmd(lang *languageFlag) *cobra.Command {
	var in, out, field, value string
	var index int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one field of one budget line",
		Long: fmt.Sprintf(`Change one field of one budget line. Editing monthlyCost,
frequency or quantity recomputes the line total.

Fields: %s`, joinFields()),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := domain.ParseBudgetField(field)
			if err != nil {
				return err
			}
			p, err := readProposal(in)
			if err != nil {
				return err
			}
			p, err = domain.UpdateLineItem(p, index, f, value)
			if err != nil {
				return err
			}

			dest := out
			if dest == "" {
				dest = in
			}
			if err := writeProposal(dest, p); err != nil {
				return err
			}

			l := lang.Language()
			line := p.Budget[index]
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, formatter.Success(fmt.Sprintf("%s: %s = %s", line.Item, f, line.Value(f))))
			fmt.Fprintf(w, "%s %s\n", formatter.Dim(l.Labels().SpreadsheetHeader[8]+":"), l.FormatAmount(line.Total))
			fmt.Fprintln(w, formatter.FormatGrandTotal(p, l))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "proposal JSON file (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result here instead of back to --in")
	cmd.Flags().IntVar(&index, "index", 0, "budget line index, starting at 0")
	cmd.Flags().StringVar(&field, "field", "", "field to change (required)")
	cmd.Flags().StringVar(&value, "value", "", "new value")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

func joinFields() string {
	fields := domain.BudgetFields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
