package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/domain"
)

// ideaRequest is what the input screen collected; the proposal step
// reuses the country and categories.
type ideaRequest struct {
	Vision     string
	Country    string
	Categories []string
}

// ideasLoadedMsg delivers a generated idea batch to the input view.
type ideasLoadedMsg struct {
	request ideaRequest
	ideas   []domain.ProjectIdea
}

// inputView is the first screen: vision, country and optional budget
// categories. Submitting generates ideas behind the loading screen.
type inputView struct {
	state *SharedState
	form  *huh.Form

	vision     string
	country    string
	categories string
}

func newInputView(state *SharedState) *inputView {
	v := &inputView{state: state}
	v.form = v.buildForm()
	return v
}

func (v *inputView) buildForm() *huh.Form {
	l := v.state.Lang.Labels()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(l.Vision).
				Placeholder(l.VisionPlaceholder).
				Lines(3).
				Value(&v.vision).
				Validate(required(v.state.Lang)),
			huh.NewInput().
				Title(l.Country).
				Placeholder(l.CountryPlaceholder).
				Value(&v.country).
				Validate(required(v.state.Lang)),
			huh.NewInput().
				Title(l.Categories).
				Description(l.CategoriesHint).
				Value(&v.categories),
		),
	).WithTheme(atharHuhTheme()).WithShowHelp(false)
}

func (v *inputView) ID() ViewID          { return ViewInput }
func (v *inputView) Title() string       { return "" }
func (v *inputView) CapturesInput() bool { return true }

func (v *inputView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", v.state.Lang.Labels().Start)),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (v *inputView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *inputView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case langChangedMsg:
		v.form = v.buildForm()
		return v, v.form.Init()

	case ideasLoadedMsg:
		return v, pushView(newIdeasView(v.state, msg.request, msg.ideas))
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		// A fresh form keeps the typed values for editing after Back or a
		// failed call.
		v.form = v.buildForm()
		return v, tea.Batch(v.form.Init(), v.submit())
	}
	return v, cmd
}

// submit starts idea generation for the current field values.
func (v *inputView) submit() tea.Cmd {
	req := ideaRequest{
		Vision:     strings.TrimSpace(v.vision),
		Country:    strings.TrimSpace(v.country),
		Categories: domain.ParseCategories(v.categories),
	}
	state := v.state
	lang := state.Lang

	return startCall(lang.Labels().LoadingContext, func() (tea.Msg, error) {
		d, err := state.Drafters()
		if err != nil {
			return nil, err
		}
		ideas, err := d.Ideas.GenerateIdeas(context.Background(), req.Vision, req.Country, lang)
		if err != nil {
			return nil, err
		}
		return ideasLoadedMsg{request: req, ideas: ideas}, nil
	})
}

func (v *inputView) View() string {
	l := v.state.Lang.Labels()
	var b strings.Builder
	b.WriteString("\n" + formatter.StyleHeader.Render(l.Welcome) + "\n")
	b.WriteString(formatter.Dim(l.SubWelcome) + "\n\n")
	b.WriteString(v.form.View())
	return b.String()
}
