package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/fift2939-create/ather1/internal/domain"
)

var testLineCounter atomic.Int64

// Budget line options
type LineOption func(*domain.BudgetLineItem)

func WithCost(monthly, frequency float64) LineOption {
	return func(li *domain.BudgetLineItem) {
		li.MonthlyCost = monthly
		li.Frequency = frequency
	}
}

func WithQuantity(q string) LineOption {
	return func(li *domain.BudgetLineItem) {
		li.Quantity = q
	}
}

func WithCategory(c string) LineOption {
	return func(li *domain.BudgetLineItem) {
		li.Category = domain.Category(c)
	}
}

// NewTestLine returns a line costing 100 once for a quantity of 1, with its
// total already derived. Options are applied before the total.
func NewTestLine(item string, opts ...LineOption) domain.BudgetLineItem {
	n := testLineCounter.Add(1)
	li := domain.BudgetLineItem{
		BudgetCode:    fmt.Sprintf("B%02d", n),
		Item:          item,
		MonthlyCost:   100,
		Allocation:    "100%",
		Quantity:      "1",
		Unit:          "unit",
		Frequency:     1,
		FrequencyUnit: "month",
		Description:   item + " for the project",
	}
	for _, opt := range opts {
		opt(&li)
	}
	return li.Recompute()
}

// Proposal options
type ProposalOption func(*domain.ProjectProposal)

func WithBudget(lines ...domain.BudgetLineItem) ProposalOption {
	return func(p *domain.ProjectProposal) {
		p.Budget = lines
	}
}

func WithTitle(title string) ProposalOption {
	return func(p *domain.ProjectProposal) {
		p.Title = title
	}
}

// NewTestProposal returns a proposal with every required section filled and
// a two-line budget.
func NewTestProposal(opts ...ProposalOption) domain.ProjectProposal {
	p := domain.ProjectProposal{
		Title:            "Water Access for Taiz",
		ExecutiveSummary: "Restore safe water for returnee households.",
		ProblemAnalysis:  "Networks were damaged and trucking is costly.",
		TheoryOfChange:   "If wells are repaired then disease falls.",
		SpecificGoals:    []string{"Repair 10 wells", "Train 20 caretakers"},
		SWOT: domain.SWOT{
			Strengths:     []string{"Local engineers"},
			Weaknesses:    []string{"Short timeline"},
			Opportunities: []string{"Cluster support"},
			Threats:       []string{"Fuel shortages"},
		},
		Activities: []domain.Activity{
			{Activity: "Well repair", Details: "Replace pumps", Output: "10 working wells"},
		},
		MEPlan: domain.MEPlan{
			Indicators: []string{"Litres per person per day"},
			Tools:      []string{"Household survey"},
			Mechanism:  "Quarterly review",
		},
		Sustainability: "Water committees take over maintenance.",
		Budget: []domain.BudgetLineItem{
			NewTestLine("Engineer", WithCost(800, 6), WithCategory("Staff")),
			NewTestLine("Pumps", WithCost(250, 1), WithQuantity("10 pumps"), WithCategory("Equipment")),
		},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
