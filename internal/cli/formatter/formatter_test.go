package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/locale"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func sampleProposal() domain.ProjectProposal {
	return domain.ProjectProposal{
		Title:            "Clean Water for Taiz",
		ExecutiveSummary: "Restore wells.",
		ProblemAnalysis:  "Wells are broken.",
		SpecificGoals:    []string{"Repair 10 wells", ""},
		SWOT:             domain.SWOT{Strengths: []string{"Local staff"}, Threats: []string{"Conflict"}},
		Activities:       []domain.Activity{{Activity: "Survey", Details: "Map wells", Output: "Report"}},
		MEPlan:           domain.MEPlan{Indicators: []string{"Wells repaired"}},
		Risks:            []domain.Risk{{Risk: "Access", Impact: domain.ImpactHigh, Mitigation: "Local partners"}},
		Budget: []domain.BudgetLineItem{
			{Item: "Engineer", MonthlyCost: 500, Frequency: 6, Quantity: "1", Total: 3000, Category: "Staff"},
			{Item: "Pipes", MonthlyCost: 100, Frequency: 1, Quantity: "4 sets", Total: 400, Category: "Procurement"},
			{Item: "Driver", MonthlyCost: 300, Frequency: 2, Quantity: "1", Total: 600, Category: "Staff"},
		},
	}
}

func TestTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "Long header"}, [][]string{{"xyz", "1"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A    Long header", lines[0])
	assert.Equal(t, "xyz  1", strings.TrimRight(lines[2], " "))
}

func TestTable_NumericColumnsPadLeft(t *testing.T) {
	out := stripANSI(Table{
		Headers:  []string{"Total"},
		Rows:     [][]string{{"5"}, {"1,000"}},
		Numeric:  map[int]bool{0: true},
		Selected: -1,
	}.Render())
	assert.Contains(t, out, "    5\n")
	assert.Contains(t, out, "1,000\n")
}

func TestTable_RTLReversesColumns(t *testing.T) {
	out := stripANSI(Table{Headers: []string{"first", "second"}, RTL: true, Selected: -1}.Render())
	assert.True(t, strings.HasPrefix(out, "second"), out)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
	assert.Equal(t, "مرح…", Truncate("مرحبا بكم", 4))
}

func TestAlign_OnlyForRTL(t *testing.T) {
	assert.Equal(t, "abc", Align("abc", 10, locale.English))
	assert.Equal(t, "       abc", Align("abc", 10, locale.Arabic))
}

func TestFormatIdeas_MarksCursor(t *testing.T) {
	ideas := []domain.ProjectIdea{
		{ID: "0", Name: "Wells", Description: "d", Sector: "WASH", TargetGroup: "Families"},
		{ID: "1", Name: "Clinics", Description: "d", Sector: "Health", TargetGroup: "Mothers"},
	}
	out := stripANSI(FormatIdeas(ideas, locale.English, 1))
	assert.Contains(t, out, "  1. Wells")
	assert.Contains(t, out, "▸ 2. Clinics")
	assert.Contains(t, out, "Sector: Health")
}

func TestFormatNarrative_SectionOrder(t *testing.T) {
	out := stripANSI(FormatNarrative(sampleProposal(), locale.English))
	l := locale.English.Labels()

	order := []string{l.ExecSummary, l.ProbAnalysis, l.Goals, l.SWOT, l.Activities, l.METitle, l.Risks}
	last := -1
	for _, title := range order {
		i := strings.Index(out, title)
		require.GreaterOrEqual(t, i, 0, "missing %q", title)
		assert.Greater(t, i, last, "%q out of order", title)
		last = i
	}
	assert.NotContains(t, out, l.TheoryOfChange, "empty sections are skipped")
	assert.NotContains(t, out, l.Weaknesses)
	assert.Contains(t, out, "[Impact: High]")
}

func TestFormatBudget_GroupsAndTotals(t *testing.T) {
	out := stripANSI(FormatBudget(sampleProposal(), locale.English, -1))

	staff := strings.Index(out, "Staff")
	proc := strings.Index(out, "Procurement")
	require.GreaterOrEqual(t, staff, 0)
	assert.Less(t, staff, proc, "groups appear in first-seen order")
	assert.Contains(t, out, "Subtotal: 3,600.00")
	assert.Contains(t, out, "Grand Total: 4,000.00")
}

func TestFormatBudget_UncategorizedUsesGeneralLabel(t *testing.T) {
	p := domain.ProjectProposal{Budget: []domain.BudgetLineItem{{Item: "Misc", Total: 5}}}
	out := stripANSI(FormatBudget(p, locale.Arabic, 0))
	assert.Contains(t, out, locale.Arabic.GeneralItems())
}

func TestFormatBudget_MarksSelectedLine(t *testing.T) {
	out := stripANSI(FormatBudget(sampleProposal(), locale.English, 2))

	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, CursorMarker) {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "Driver")

	assert.NotContains(t, stripANSI(FormatBudget(sampleProposal(), locale.English, -1)), CursorMarker)
}
