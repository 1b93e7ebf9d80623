package domain

// ProjectIdea is one candidate produced by the idea proposer. ID is the
// position within its batch and is only unique inside that batch.
type ProjectIdea struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetGroup string `json:"targetGroup"`
	Sector      string `json:"sector"`
}

type Activity struct {
	Activity string `json:"activity"`
	Details  string `json:"details"`
	Output   string `json:"output"`
}

type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

type Risk struct {
	Risk       string `json:"risk"`
	Impact     Impact `json:"impact,omitempty"`
	Mitigation string `json:"mitigation"`
}

type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// MEPlan is the monitoring and evaluation plan.
type MEPlan struct {
	Indicators []string `json:"indicators"`
	Tools      []string `json:"tools"`
	Mechanism  string   `json:"mechanism"`
}

type Targets struct {
	Direct   string `json:"direct"`
	Indirect string `json:"indirect"`
}

// BudgetLineItem is one row of the budget. Quantity is display text that may
// embed a leading magnitude ("5 staff"); Total is derived, see Recompute.
type BudgetLineItem struct {
	BudgetCode    string   `json:"budgetCode,omitempty"`
	Item          string   `json:"item"`
	MonthlyCost   float64  `json:"monthlyCost"`
	Allocation    string   `json:"allocation"`
	Quantity      string   `json:"quantity"`
	Unit          string   `json:"unit"`
	Frequency     float64  `json:"frequency"`
	FrequencyUnit string   `json:"frequencyUnit"`
	Total         float64  `json:"total"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
}

// ProjectProposal is the aggregate produced by one drafting call. It is
// replaced wholesale on every call; only Budget is edited afterwards.
type ProjectProposal struct {
	Title            string           `json:"title"`
	ExecutiveSummary string           `json:"executiveSummary"`
	ProblemAnalysis  string           `json:"problemAnalysis,omitempty"`
	Justification    string           `json:"justification,omitempty"`
	TheoryOfChange   string           `json:"theoryOfChange,omitempty"`
	GeneralGoal      string           `json:"generalGoal,omitempty"`
	SpecificGoals    []string         `json:"specificGoals,omitempty"`
	SWOT             SWOT             `json:"swot"`
	Targets          *Targets         `json:"targets,omitempty"`
	Scope            string           `json:"scope,omitempty"`
	Activities       []Activity       `json:"activities"`
	Results          []string         `json:"results,omitempty"`
	MEPlan           MEPlan           `json:"mePlan"`
	Risks            []Risk           `json:"risks,omitempty"`
	Sustainability   string           `json:"sustainability,omitempty"`
	Assumptions      string           `json:"assumptions,omitempty"`
	Budget           []BudgetLineItem `json:"budget"`
}

// GrandTotal sums the line totals of the budget.
func (p ProjectProposal) GrandTotal() float64 {
	var sum float64
	for _, li := range p.Budget {
		sum += li.Total
	}
	return sum
}

// WithRecomputedBudget returns a copy of p whose budget lines all satisfy the
// total invariant. The receiver's budget slice is left untouched.
func (p ProjectProposal) WithRecomputedBudget() ProjectProposal {
	budget := make([]BudgetLineItem, len(p.Budget))
	for i, li := range p.Budget {
		budget[i] = li.Recompute()
	}
	p.Budget = budget
	return p
}
