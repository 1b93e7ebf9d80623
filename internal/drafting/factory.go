package drafting

import "github.com/fift2939-create/ather1/internal/llm"

// Drafters bundles the two drafting services a caller needs.
type Drafters struct {
	Ideas     IdeaService
	Proposals ProposalService
}

// DrafterFactory builds drafting services for a configuration. It is
// called per request so a credential supplied for one request or session
// can be used without being stored.
type DrafterFactory func(cfg llm.Config) (Drafters, error)

// NewDrafterFactory returns a factory backed by real provider clients.
func NewDrafterFactory(observer llm.Observer) DrafterFactory {
	return func(cfg llm.Config) (Drafters, error) {
		client, err := llm.NewClient(cfg, observer)
		if err != nil {
			return Drafters{}, err
		}
		return Drafters{
			Ideas:     NewIdeaService(client),
			Proposals: NewProposalService(client),
		}, nil
	}
}
