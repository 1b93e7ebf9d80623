package formatter

import (
	"fmt"
	"strings"

	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/locale"
)

// FormatIdeas renders the idea cards, marking the one under the cursor.
// A negative cursor marks none.
func FormatIdeas(ideas []domain.ProjectIdea, lang locale.Language, cursor int) string {
	l := lang.Labels()
	var b strings.Builder
	b.WriteString(Header(l.IdeasTitle) + "\n\n")

	for i, idea := range ideas {
		marker := "  "
		name := Bold(idea.Name)
		if i == cursor {
			marker = StyleAccent.Render(CursorMarker)
			name = StyleHeader.Render(idea.Name)
		}
		fmt.Fprintf(&b, "%s%d. %s\n", marker, i+1, name)
		fmt.Fprintf(&b, "     %s\n", idea.Description)
		fmt.Fprintf(&b, "     %s %s  %s %s\n\n",
			Dim(l.Sector+":"), idea.Sector,
			Dim(l.TargetGroup+":"), idea.TargetGroup)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatNarrative renders the technical proposal tab. Sections keep the
// exported document order; optional sections follow when present.
func FormatNarrative(p domain.ProjectProposal, lang locale.Language) string {
	l := lang.Labels()
	var sections []string
	add := func(title, body string) {
		if strings.TrimSpace(body) == "" {
			return
		}
		sections = append(sections, Header(title)+"\n"+body)
	}

	sections = append(sections, StyleHeader.Render(p.Title))
	add(l.ExecSummary, p.ExecutiveSummary)
	add(l.ProbAnalysis, p.ProblemAnalysis)
	add(l.TheoryOfChange, p.TheoryOfChange)
	add(l.Goals, Bullets(p.SpecificGoals))
	add(l.SWOT, formatSWOT(p.SWOT, l))
	add(l.Activities, formatActivities(p.Activities, lang))
	add(l.METitle, formatME(p.MEPlan, l))
	add(l.Sustainability, p.Sustainability)

	add(l.Justification, p.Justification)
	add(l.GeneralGoal, p.GeneralGoal)
	if p.Targets != nil {
		add(l.Targets, fmt.Sprintf("%s %s\n%s %s",
			Dim(l.DirectTargets+":"), p.Targets.Direct,
			Dim(l.IndirectTarget+":"), p.Targets.Indirect))
	}
	add(l.Scope, p.Scope)
	add(l.Results, Bullets(p.Results))
	add(l.Risks, formatRisks(p.Risks, l))
	add(l.Assumptions, p.Assumptions)

	return strings.Join(sections, "\n\n")
}

func formatSWOT(s domain.SWOT, l locale.Labels) string {
	var parts []string
	for _, q := range []struct {
		title string
		items []string
	}{
		{l.Strengths, s.Strengths},
		{l.Weaknesses, s.Weaknesses},
		{l.Opportunities, s.Opportunities},
		{l.Threats, s.Threats},
	} {
		if len(q.items) == 0 {
			continue
		}
		parts = append(parts, Bold(q.title)+"\n"+Bullets(q.items))
	}
	return strings.Join(parts, "\n")
}

func formatActivities(acts []domain.Activity, lang locale.Language) string {
	if len(acts) == 0 {
		return ""
	}
	l := lang.Labels()
	rows := make([][]string, len(acts))
	for i, a := range acts {
		rows[i] = []string{Truncate(a.Activity, 40), Truncate(a.Details, 60), Truncate(a.Output, 40)}
	}
	return Table{
		Headers:  []string{l.Activity, l.Details, l.Output},
		Rows:     rows,
		RTL:      lang.IsRTL(),
		Selected: -1,
	}.Render()
}

func formatME(m domain.MEPlan, l locale.Labels) string {
	var parts []string
	if len(m.Indicators) > 0 {
		parts = append(parts, Bold(l.Indicators)+"\n"+Bullets(m.Indicators))
	}
	if len(m.Tools) > 0 {
		parts = append(parts, Bold(l.Tools)+"\n"+Bullets(m.Tools))
	}
	if m.Mechanism != "" {
		parts = append(parts, Bold(l.Mechanism)+"\n"+m.Mechanism)
	}
	return strings.Join(parts, "\n")
}

func formatRisks(risks []domain.Risk, l locale.Labels) string {
	var b strings.Builder
	for _, r := range risks {
		b.WriteString(StyleAccent.Render("•") + " " + r.Risk)
		if r.Impact != "" {
			b.WriteString(" " + ImpactStyle(r.Impact).Render("["+l.Impact+": "+string(r.Impact)+"]"))
		}
		b.WriteString("\n  " + Dim(l.Mitigation+":") + " " + r.Mitigation + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatBudget renders the financial tab: one table per category group with
// its subtotal, then the grand total. selected is the flat budget index of
// the highlighted line, or -1.
func FormatBudget(p domain.ProjectProposal, lang locale.Language, selected int) string {
	l := lang.Labels()
	h := l.SpreadsheetHeader
	var b strings.Builder

	b.WriteString(Header(l.BudgetEdit) + "\n")
	for _, g := range domain.GroupByCategory(p.Budget, lang) {
		b.WriteString("\n" + Bold(g.Category) + "\n")

		rows := make([][]string, len(g.Lines))
		sel := -1
		for i, line := range g.Lines {
			li := line.Item
			rows[i] = []string{
				Truncate(li.Item, 36),
				lang.FormatAmount(li.MonthlyCost),
				li.Quantity,
				li.Value(domain.FieldFrequency),
				lang.FormatAmount(li.Total),
			}
			if line.OriginalIndex == selected {
				sel = i
			}
		}
		b.WriteString(Table{
			Headers:  []string{h[1], h[2], h[4], h[6], h[8]},
			Rows:     rows,
			Numeric:  map[int]bool{1: true, 3: true, 4: true},
			RTL:      lang.IsRTL(),
			Selected: sel,
			Gutter:   selected >= 0,
		}.Render())
		b.WriteString(Dim(l.Subtotal+": ") + lang.FormatAmount(g.Subtotal()) + "\n")
	}

	b.WriteString("\n" + FormatGrandTotal(p, lang))
	return b.String()
}

// FormatGrandTotal is the total budget line.
func FormatGrandTotal(p domain.ProjectProposal, lang locale.Language) string {
	return StyleHeader.Render(lang.Labels().GrandTotal+": ") + Bold(lang.FormatAmount(p.GrandTotal()))
}
