package drafting

import (
	"errors"
	"fmt"

	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
)

// Operation names used in GenerationError.
const (
	OpGenerateIdeas = "generate ideas"
	OpDraftProposal = "draft proposal"
)

// GenerationError reports a drafting call that failed or returned content
// that does not fit the expected shape. Callers keep their previous state
// and show Error() as a single message.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Describe returns the one line shown to the user for a failed drafting
// call, prefixed with the localized title of the failed step.
func Describe(err error, lang locale.Language) string {
	labels := lang.Labels()

	var cfgErr *llm.ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Title
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		return err.Error()
	}

	prefix := labels.DraftError
	if genErr.Op == OpGenerateIdeas {
		prefix = labels.IdeasError
	}
	return fmt.Sprintf("%s: %v", prefix, genErr.Err)
}
