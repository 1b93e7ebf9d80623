package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
)

// setupView explains how to configure the AI credential. Drafting stays
// blocked until a key is configured or entered for this session.
type setupView struct {
	state *SharedState
}

func newSetupView(state *SharedState) *setupView {
	return &setupView{state: state}
}

func (v *setupView) ID() ViewID    { return ViewSetup }
func (v *setupView) Title() string { return v.state.Lang.Labels().SetupRequired }

func (v *setupView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "enter key")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *setupView) Init() tea.Cmd { return nil }

func (v *setupView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "k" {
		return v, pushView(newSessionKeyView(v.state))
	}
	return v, nil
}

func (v *setupView) View() string {
	l := v.state.Lang.Labels()
	var b strings.Builder
	b.WriteString(l.SetupDesc + "\n\n")
	for _, step := range l.SetupSteps {
		b.WriteString("  " + step + "\n")
	}
	b.WriteString("\n" + formatter.Dim("provider: "+string(v.state.Config.Provider)))
	return "\n" + formatter.RenderBox(l.SetupRequired, b.String())
}

// newSessionKeyView asks for a key that is kept in memory for this run.
func newSessionKeyView(state *SharedState) View {
	l := state.Lang.Labels()
	var apiKey string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(l.SetupKeyTitle).
				EchoMode(huh.EchoModePassword).
				Value(&apiKey).
				Validate(required(state.Lang)),
		),
	).WithTheme(atharHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg { return sessionKeyMsg{key: apiKey} }
	}
	return newWizardView(state, l.SetupKeyTitle, form, done)
}
