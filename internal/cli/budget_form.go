package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fift2939-create/ather1/internal/domain"
)

// editableFields are the budget fields offered in the TUI edit form, in
// form order.
var editableFields = []domain.BudgetField{
	domain.FieldItem,
	domain.FieldCategory,
	domain.FieldMonthlyCost,
	domain.FieldQuantity,
	domain.FieldFrequency,
	domain.FieldFrequencyUnit,
	domain.FieldDescription,
}

// newBudgetEditView opens a form prefilled with one budget line. Changed
// fields are applied in form order; cost, quantity and frequency changes
// recompute the line total.
func newBudgetEditView(state *SharedState, p domain.ProjectProposal, index int) View {
	l := state.Lang.Labels()
	line := p.Budget[index]
	titles := map[domain.BudgetField]string{
		domain.FieldItem:          l.Item,
		domain.FieldCategory:      l.Category,
		domain.FieldMonthlyCost:   l.Cost,
		domain.FieldQuantity:      l.Qty,
		domain.FieldFrequency:     l.Freq,
		domain.FieldFrequencyUnit: l.SpreadsheetHeader[7],
		domain.FieldDescription:   l.SpreadsheetHeader[9],
	}

	values := make(map[domain.BudgetField]*string, len(editableFields))
	fields := make([]huh.Field, 0, len(editableFields))
	for _, f := range editableFields {
		val := line.Value(f)
		values[f] = &val
		in := huh.NewInput().Title(titles[f]).Value(values[f])
		if f == domain.FieldItem {
			in = in.Validate(required(state.Lang))
		}
		fields = append(fields, in)
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(atharHuhTheme()).
		WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			updated, err := applyLineEdits(p, index, line, values)
			if err != nil {
				return outputMsg{err: err}
			}
			return budgetEditedMsg{proposal: updated}
		}
	}
	return newWizardView(state, l.EditLine, form, done)
}

// applyLineEdits writes every field whose text differs from the original
// line through domain.UpdateLineItem.
func applyLineEdits(p domain.ProjectProposal, index int, orig domain.BudgetLineItem, values map[domain.BudgetField]*string) (domain.ProjectProposal, error) {
	for _, f := range editableFields {
		raw := *values[f]
		if raw == orig.Value(f) {
			continue
		}
		var err error
		if p, err = domain.UpdateLineItem(p, index, f, raw); err != nil {
			return p, err
		}
	}
	return p, nil
}
