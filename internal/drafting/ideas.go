// Package drafting turns user input into project ideas and full proposals
// through an llm.LLMClient, validating every response before it reaches the
// domain model.
package drafting

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
)

// IdeaCount is the number of ideas every batch must contain.
const IdeaCount = 4

// IdeaService proposes candidate projects for a vision and a country.
type IdeaService interface {
	// GenerateIdeas returns exactly IdeaCount ideas with IDs "0".."3".
	GenerateIdeas(ctx context.Context, vision, country string, lang locale.Language) ([]domain.ProjectIdea, error)
}

type ideaService struct {
	client llm.LLMClient
}

// NewIdeaService creates an IdeaService backed by an LLM client.
func NewIdeaService(client llm.LLMClient) IdeaService {
	return &ideaService{client: client}
}

type ideaBatch struct {
	Ideas []domain.ProjectIdea `json:"ideas"`
}

func (s *ideaService) GenerateIdeas(ctx context.Context, vision, country string, lang locale.Language) ([]domain.ProjectIdea, error) {
	if err := domain.Require(
		domain.RequiredField{Name: "vision", Value: vision},
		domain.RequiredField{Name: "country", Value: country},
	); err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskIdeas,
		SystemPrompt: ideasSystemPrompt,
		UserPrompt:   ideasPrompt(strings.TrimSpace(vision), strings.TrimSpace(country), lang),
		Schema:       ideaBatchSchema,
	})
	if err != nil {
		return nil, wrapCallError(OpGenerateIdeas, err)
	}

	batch, err := llm.ExtractJSON(resp.Text, validateIdeaBatch)
	if err != nil {
		return nil, &GenerationError{Op: OpGenerateIdeas, Err: err}
	}

	ideas := make([]domain.ProjectIdea, len(batch.Ideas))
	for i, idea := range batch.Ideas {
		idea.ID = strconv.Itoa(i)
		ideas[i] = idea
	}
	return ideas, nil
}

func validateIdeaBatch(b ideaBatch) error {
	if len(b.Ideas) != IdeaCount {
		return fmt.Errorf("expected %d ideas, got %d", IdeaCount, len(b.Ideas))
	}
	for i, idea := range b.Ideas {
		var missing []string
		for _, f := range []struct{ name, value string }{
			{"name", idea.Name},
			{"description", idea.Description},
			{"targetGroup", idea.TargetGroup},
			{"sector", idea.Sector},
		} {
			if strings.TrimSpace(f.value) == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("idea %d missing %s", i, strings.Join(missing, ", "))
		}
	}
	return nil
}

// wrapCallError turns a failed client call into a GenerationError, except
// for a missing credential, which callers handle separately.
func wrapCallError(op string, err error) error {
	var cfgErr *llm.ConfigurationError
	if errors.As(err, &cfgErr) {
		return err
	}
	return &GenerationError{Op: op, Err: err}
}
