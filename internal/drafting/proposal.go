package drafting

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
)

// ProposalService expands a chosen idea into a full proposal.
type ProposalService interface {
	// DraftProposal returns a proposal whose budget totals already satisfy
	// the line total rule. Empty customCategories selects the language's
	// default category set.
	DraftProposal(ctx context.Context, idea domain.ProjectIdea, country string, lang locale.Language, customCategories []string) (*domain.ProjectProposal, error)
}

type proposalService struct {
	client llm.LLMClient
}

// NewProposalService creates a ProposalService backed by an LLM client.
func NewProposalService(client llm.LLMClient) ProposalService {
	return &proposalService{client: client}
}

// ResolveCategories returns the categories a proposal is drafted with.
func ResolveCategories(custom []string, lang locale.Language) []string {
	var out []string
	for _, c := range custom {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return lang.DefaultCategories()
	}
	return out
}

func (s *proposalService) DraftProposal(ctx context.Context, idea domain.ProjectIdea, country string, lang locale.Language, customCategories []string) (*domain.ProjectProposal, error) {
	if err := domain.Require(
		domain.RequiredField{Name: "idea", Value: idea.Name},
		domain.RequiredField{Name: "country", Value: country},
	); err != nil {
		return nil, err
	}

	categories := ResolveCategories(customCategories, lang)
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskProposal,
		SystemPrompt: proposalSystemPrompt,
		UserPrompt:   proposalPrompt(idea.Name, idea.Description, strings.TrimSpace(country), lang, categories),
		Schema:       proposalSchema,
	})
	if err != nil {
		return nil, wrapCallError(OpDraftProposal, err)
	}

	drafted, err := llm.ExtractJSON(resp.Text, validateDraftedProposal)
	if err != nil {
		return nil, &GenerationError{Op: OpDraftProposal, Err: err}
	}

	p := drafted.toDomain().WithRecomputedBudget()
	return &p, nil
}

// draftedProposal is the wire shape of a drafted proposal. Pointer fields
// distinguish a missing key from an empty value.
type draftedProposal struct {
	domain.ProjectProposal
	MEPlan     *domain.MEPlan    `json:"mePlan"`
	Activities []domain.Activity `json:"activities"`
	Budget     []draftedLine     `json:"budget"`
}

type draftedLine struct {
	BudgetCode    string       `json:"budgetCode"`
	Item          *string      `json:"item"`
	MonthlyCost   float64      `json:"monthlyCost"`
	Allocation    string       `json:"allocation"`
	Quantity      quantityText `json:"quantity"`
	Unit          string       `json:"unit"`
	Frequency     float64      `json:"frequency"`
	FrequencyUnit string       `json:"frequencyUnit"`
	Total         float64      `json:"total"`
	Description   string       `json:"description"`
	Category      *string      `json:"category"`
}

// quantityText accepts a quantity sent as text ("5 staff") or as a bare
// number.
type quantityText string

func (q *quantityText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = quantityText(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("quantity must be text or a number: %s", data)
	}
	*q = quantityText(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func validateDraftedProposal(d draftedProposal) error {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.ExecutiveSummary) == "" {
		missing = append(missing, "executiveSummary")
	}
	if d.Activities == nil {
		missing = append(missing, "activities")
	}
	if d.MEPlan == nil {
		missing = append(missing, "mePlan")
	}
	if d.Budget == nil {
		missing = append(missing, "budget")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}

	for i, li := range d.Budget {
		if li.Item == nil {
			return fmt.Errorf("budget line %d missing item", i)
		}
		if li.Category == nil {
			return fmt.Errorf("budget line %d missing category", i)
		}
	}
	return nil
}

func (d draftedProposal) toDomain() domain.ProjectProposal {
	p := d.ProjectProposal
	p.MEPlan = *d.MEPlan
	p.Activities = d.Activities
	p.Budget = make([]domain.BudgetLineItem, len(d.Budget))
	for i, li := range d.Budget {
		p.Budget[i] = domain.BudgetLineItem{
			BudgetCode:    li.BudgetCode,
			Item:          *li.Item,
			MonthlyCost:   li.MonthlyCost,
			Allocation:    li.Allocation,
			Quantity:      string(li.Quantity),
			Unit:          li.Unit,
			Frequency:     li.Frequency,
			FrequencyUnit: li.FrequencyUnit,
			Total:         li.Total,
			Description:   li.Description,
			Category:      domain.Category(*li.Category),
		}
	}
	return p
}
