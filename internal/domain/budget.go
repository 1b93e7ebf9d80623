package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// BudgetField names an editable attribute of a BudgetLineItem.
type BudgetField string

const (
	FieldBudgetCode    BudgetField = "budgetCode"
	FieldItem          BudgetField = "item"
	FieldMonthlyCost   BudgetField = "monthlyCost"
	FieldAllocation    BudgetField = "allocation"
	FieldQuantity      BudgetField = "quantity"
	FieldUnit          BudgetField = "unit"
	FieldFrequency     BudgetField = "frequency"
	FieldFrequencyUnit BudgetField = "frequencyUnit"
	FieldTotal         BudgetField = "total"
	FieldDescription   BudgetField = "description"
	FieldCategory      BudgetField = "category"
)

var budgetFields = []BudgetField{
	FieldBudgetCode, FieldItem, FieldMonthlyCost, FieldAllocation, FieldQuantity,
	FieldUnit, FieldFrequency, FieldFrequencyUnit, FieldTotal, FieldDescription, FieldCategory,
}

// BudgetFields lists every editable field in spreadsheet column order.
func BudgetFields() []BudgetField {
	out := make([]BudgetField, len(budgetFields))
	copy(out, budgetFields)
	return out
}

// ParseBudgetField resolves a field name, case-insensitively.
func ParseBudgetField(s string) (BudgetField, error) {
	for _, f := range budgetFields {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// IsNumeric reports whether the field holds a number.
func (f BudgetField) IsNumeric() bool {
	return f == FieldMonthlyCost || f == FieldFrequency || f == FieldTotal
}

// TriggersRecompute reports whether editing the field changes Total.
func (f BudgetField) TriggersRecompute() bool {
	return f == FieldMonthlyCost || f == FieldFrequency || f == FieldQuantity
}

var firstInteger = regexp.MustCompile(`[0-9]+`)

// NumericQuantity extracts the multiplier embedded in a quantity string: the
// first run of ASCII digits ("5 staff members, 2 trips" is 5). Text without
// ASCII digits counts as 1.
func NumericQuantity(quantity string) float64 {
	m := firstInteger.FindString(quantity)
	if m == "" {
		return 1
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 1
	}
	return n
}

// ParseAmount converts user input to a number. Empty or non-numeric input
// yields 0; digit grouping commas are ignored.
func ParseAmount(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// LineTotal is monthlyCost × frequency × NumericQuantity(quantity).
func LineTotal(monthlyCost, frequency float64, quantity string) float64 {
	return monthlyCost * frequency * NumericQuantity(quantity)
}

// Recompute returns the line with Total re-derived from its inputs.
func (li BudgetLineItem) Recompute() BudgetLineItem {
	li.Total = LineTotal(li.MonthlyCost, li.Frequency, li.Quantity)
	return li
}

// Set returns a copy of the line with one field replaced by raw. Trigger
// fields re-derive Total; other fields leave it as it was.
func (li BudgetLineItem) Set(field BudgetField, raw string) (BudgetLineItem, error) {
	switch field {
	case FieldBudgetCode:
		li.BudgetCode = raw
	case FieldItem:
		li.Item = raw
	case FieldMonthlyCost:
		li.MonthlyCost = ParseAmount(raw)
	case FieldAllocation:
		li.Allocation = raw
	case FieldQuantity:
		li.Quantity = raw
	case FieldUnit:
		li.Unit = raw
	case FieldFrequency:
		li.Frequency = ParseAmount(raw)
	case FieldFrequencyUnit:
		li.FrequencyUnit = raw
	case FieldTotal:
		li.Total = ParseAmount(raw)
	case FieldDescription:
		li.Description = raw
	case FieldCategory:
		li.Category = Category(raw)
	default:
		return li, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if field.TriggersRecompute() {
		li = li.Recompute()
	}
	return li, nil
}

// Value returns the field rendered as text, as an editor would prefill it.
func (li BudgetLineItem) Value(field BudgetField) string {
	switch field {
	case FieldBudgetCode:
		return li.BudgetCode
	case FieldItem:
		return li.Item
	case FieldMonthlyCost:
		return formatNumber(li.MonthlyCost)
	case FieldAllocation:
		return li.Allocation
	case FieldQuantity:
		return li.Quantity
	case FieldUnit:
		return li.Unit
	case FieldFrequency:
		return formatNumber(li.Frequency)
	case FieldFrequencyUnit:
		return li.FrequencyUnit
	case FieldTotal:
		return formatNumber(li.Total)
	case FieldDescription:
		return li.Description
	case FieldCategory:
		return string(li.Category)
	}
	return ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// UpdateLineItem applies one field edit to the budget line at index and
// returns the resulting proposal. The returned proposal owns a fresh budget
// slice: the caller's proposal and every sibling line are left untouched.
func UpdateLineItem(p ProjectProposal, index int, field BudgetField, raw string) (ProjectProposal, error) {
	if index < 0 || index >= len(p.Budget) {
		return p, &IndexError{Index: index, Len: len(p.Budget)}
	}
	updated, err := p.Budget[index].Set(field, raw)
	if err != nil {
		return p, err
	}

	budget := make([]BudgetLineItem, len(p.Budget))
	copy(budget, p.Budget)
	budget[index] = updated

	p.Budget = budget
	return p, nil
}
