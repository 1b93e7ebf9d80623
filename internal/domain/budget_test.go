package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffProposal() ProjectProposal {
	return ProjectProposal{
		Title: "Water Access",
		Budget: []BudgetLineItem{
			{Item: "Field officer", MonthlyCost: 500, Frequency: 3, Quantity: "2 staff", Category: "Staff"},
			{Item: "Stationery", MonthlyCost: 50, Frequency: 1, Quantity: "lot", Total: 50},
		},
	}
}

func TestNumericQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5 staff members", 5},
		{"5 staff members, 2 trips", 5},
		{"staff x12", 12},
		{"lot", 1},
		{"", 1},
		{"0 units", 0},
		{"3.5 kg", 3},
		// Only ASCII digits count; Arabic-Indic numerals fall back to 1.
		{"٥ موظفين", 1},
		{"٥ موظفين، 2 رحلات", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NumericQuantity(tc.in), "quantity=%q", tc.in)
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 12.5, ParseAmount("12.5"))
	assert.Equal(t, 1200.0, ParseAmount(" 1,200 "))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("NaN"))
	assert.Equal(t, 0.0, ParseAmount("Inf"))
}

func TestRecompute_StaffLine(t *testing.T) {
	li := staffProposal().Budget[0].Recompute()
	assert.Equal(t, 3000.0, li.Total)
}

func TestUpdateLineItem_FrequencyRecomputesTotal(t *testing.T) {
	p := staffProposal().WithRecomputedBudget()
	require.Equal(t, 3000.0, p.Budget[0].Total)

	updated, err := UpdateLineItem(p, 0, FieldFrequency, "4")
	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.Budget[0].Frequency)
	assert.Equal(t, 4000.0, updated.Budget[0].Total)
}

func TestUpdateLineItem_TriggerFields(t *testing.T) {
	p := staffProposal().WithRecomputedBudget()

	updated, err := UpdateLineItem(p, 0, FieldMonthlyCost, "600")
	require.NoError(t, err)
	assert.Equal(t, 3600.0, updated.Budget[0].Total)

	updated, err = UpdateLineItem(p, 0, FieldQuantity, "4 staff")
	require.NoError(t, err)
	assert.Equal(t, "4 staff", updated.Budget[0].Quantity)
	assert.Equal(t, 6000.0, updated.Budget[0].Total)
}

func TestUpdateLineItem_NonNumericCoercesToZero(t *testing.T) {
	p := staffProposal().WithRecomputedBudget()
	updated, err := UpdateLineItem(p, 0, FieldMonthlyCost, "lots")
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Budget[0].MonthlyCost)
	assert.Equal(t, 0.0, updated.Budget[0].Total)
}

func TestUpdateLineItem_TextFieldKeepsTotal(t *testing.T) {
	p := staffProposal().WithRecomputedBudget()
	updated, err := UpdateLineItem(p, 0, FieldItem, "Senior officer")
	require.NoError(t, err)
	assert.Equal(t, "Senior officer", updated.Budget[0].Item)
	assert.Equal(t, 3000.0, updated.Budget[0].Total)
}

func TestUpdateLineItem_TotalOverride(t *testing.T) {
	p := staffProposal().WithRecomputedBudget()
	updated, err := UpdateLineItem(p, 0, FieldTotal, "2500")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, updated.Budget[0].Total)
}

func TestUpdateLineItem_LeavesSourceAndSiblingsUntouched(t *testing.T) {
	p := staffProposal().WithRecomputedBudget()
	before := p.Budget[1]

	updated, err := UpdateLineItem(p, 0, FieldFrequency, "10")
	require.NoError(t, err)

	assert.Equal(t, 3.0, p.Budget[0].Frequency, "source proposal must not change")
	assert.Equal(t, 3000.0, p.Budget[0].Total)
	assert.Equal(t, before, updated.Budget[1])
	assert.Equal(t, p.Title, updated.Title)
}

func TestUpdateLineItem_IndexOutOfRange(t *testing.T) {
	p := staffProposal()
	for _, idx := range []int{-1, 2, 99} {
		_, err := UpdateLineItem(p, idx, FieldItem, "x")
		var ie *IndexError
		require.ErrorAs(t, err, &ie, "index=%d", idx)
		assert.Equal(t, idx, ie.Index)
		assert.Equal(t, 2, ie.Len)
	}
}

func TestUpdateLineItem_UnknownField(t *testing.T) {
	_, err := UpdateLineItem(staffProposal(), 0, BudgetField("color"), "red")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestParseBudgetField(t *testing.T) {
	f, err := ParseBudgetField("MonthlyCost")
	require.NoError(t, err)
	assert.Equal(t, FieldMonthlyCost, f)

	_, err = ParseBudgetField("price")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValueRoundTripsThroughSet(t *testing.T) {
	li := staffProposal().Budget[0].Recompute()
	for _, f := range BudgetFields() {
		got, err := li.Set(f, li.Value(f))
		require.NoError(t, err, "field=%s", f)
		assert.Equal(t, li, got, "field=%s", f)
	}
}

func TestGrandTotal(t *testing.T) {
	p := staffProposal().WithRecomputedBudget()
	assert.Equal(t, 3050.0, p.GrandTotal())
	assert.Equal(t, 0.0, ProjectProposal{}.GrandTotal())
}

func TestWithRecomputedBudget_DoesNotAlias(t *testing.T) {
	p := staffProposal()
	r := p.WithRecomputedBudget()
	assert.Equal(t, 0.0, p.Budget[0].Total)
	assert.Equal(t, 3000.0, r.Budget[0].Total)
}
