package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/domain"
)

// proposalDraftedMsg delivers a drafted proposal to the ideas view.
type proposalDraftedMsg struct {
	proposal domain.ProjectProposal
}

// ideasView lists the generated ideas; choosing one drafts its proposal.
type ideasView struct {
	state   *SharedState
	request ideaRequest
	ideas   []domain.ProjectIdea
	cursor  int
}

func newIdeasView(state *SharedState, req ideaRequest, ideas []domain.ProjectIdea) *ideasView {
	return &ideasView{state: state, request: req, ideas: ideas}
}

func (v *ideasView) ID() ViewID    { return ViewIdeas }
func (v *ideasView) Title() string { return v.state.Lang.Labels().IdeasTitle }

func (v *ideasView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", v.state.Lang.Labels().Select)),
	}
}

func (v *ideasView) Init() tea.Cmd { return nil }

func (v *ideasView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case proposalDraftedMsg:
		return v, pushView(newProposalView(v.state, msg.proposal))

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.ideas)-1 {
				v.cursor++
			}
		case "1", "2", "3", "4":
			if i := int(msg.String()[0] - '1'); i < len(v.ideas) {
				v.cursor = i
			}
		case "enter":
			if v.cursor < len(v.ideas) {
				return v, v.draft(v.ideas[v.cursor])
			}
		}
	}
	return v, nil
}

func (v *ideasView) draft(idea domain.ProjectIdea) tea.Cmd {
	state := v.state
	lang := state.Lang
	req := v.request

	return startCall(lang.Labels().LoadingProposal, func() (tea.Msg, error) {
		d, err := state.Drafters()
		if err != nil {
			return nil, err
		}
		p, err := d.Proposals.DraftProposal(context.Background(), idea, req.Country, lang, req.Categories)
		if err != nil {
			return nil, err
		}
		return proposalDraftedMsg{proposal: *p}, nil
	})
}

func (v *ideasView) View() string {
	return "\n" + formatter.FormatIdeas(v.ideas, v.state.Lang, v.cursor)
}
