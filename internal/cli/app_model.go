package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/drafting"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
	"github.com/fift2939-create/ather1/internal/logger"
)

// appModel is the root bubbletea Model for the TUI. It manages the view
// stack (Input, Ideas, Proposal and their forms), the loading screen while
// a drafting call is in flight, and the single message line.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	loading      bool
	loadingLabel string
	spinner      spinner.Model

	errLine string
	outLine string
}

func newAppModel(app *App, lang locale.Language) appModel {
	log := app.TUILog
	if log == nil {
		log = logger.Nop()
	}
	state := &SharedState{
		App:    app,
		Lang:   lang,
		Config: app.Config,
		Log:    log,
		OutDir: ".",
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleAccent

	m := appModel{state: state, spinner: sp}

	// Without a credential nothing can be drafted; start on the setup screen.
	if state.Config.HasCredential() {
		m.viewStack = []View{newInputView(state)}
	} else {
		m.viewStack = []View{newSetupView(state)}
	}
	return m
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		cmd := m.broadcast(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.clearLines()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case outputMsg:
		if msg.err != nil {
			m.errLine = msg.err.Error()
			m.state.Log.Warn("tui action failed", "error", msg.err)
		} else {
			m.outLine = msg.text
		}
		return m, nil

	case sessionKeyMsg:
		m.state.Config = m.state.Config.WithAPIKey(msg.key)
		m.outLine = m.state.Lang.Labels().SetupKeySaved
		if v := m.activeView(); v != nil && v.ID() == ViewSetup {
			if len(m.viewStack) > 1 {
				return m, popView()
			}
			return m, replaceView(newInputView(m.state))
		}
		return m, nil

	case callMsg:
		if m.loading {
			return m, nil
		}
		m.clearLines()
		m.loading = true
		m.loadingLabel = msg.label
		run := msg.run
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			result, err := run()
			return callDoneMsg{result: result, err: err}
		})

	case callDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleCallError(msg.err)
		}
		cmd := m.forward(msg.result)
		return m, cmd

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	cmd := m.forward(msg)
	return m, cmd
}

// handleCallError keeps the current screen. A missing credential opens the
// setup screen; anything else becomes the error line.
func (m appModel) handleCallError(err error) (tea.Model, tea.Cmd) {
	var cfgErr *llm.ConfigurationError
	if errors.As(err, &cfgErr) {
		v := newSetupView(m.state)
		m.viewStack = append(m.viewStack, v)
		return m, v.Init()
	}
	m.errLine = drafting.Describe(err, m.state.Lang)
	m.state.Log.Warn("drafting call failed", "error", err)
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// One call at a time: input is ignored until it reports back.
	if m.loading {
		return m, nil
	}
	m.clearLines()

	if msg.Type == tea.KeyCtrlL {
		return m.toggleLanguage()
	}

	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		cmd := m.forward(msg)
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "l":
		return m.toggleLanguage()

	case msg.Type == tea.KeyEsc:
		// Back discards the view and everything it produced.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	cmd := m.forward(msg)
	return m, cmd
}

func (m appModel) toggleLanguage() (tea.Model, tea.Cmd) {
	m.state.Lang = m.state.Lang.Toggle()
	cmd := m.broadcast(langChangedMsg{})
	return m, cmd
}

func (m *appModel) clearLines() {
	m.errLine = ""
	m.outLine = ""
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	if m.loading {
		sections = append(sections, "\n  "+m.spinner.View()+" "+formatter.Dim(m.loadingLabel))
	} else if v := m.activeView(); v != nil {
		sections = append(sections, formatter.Align(v.View(), m.state.Width, m.state.Lang))
	}

	switch {
	case m.errLine != "":
		sections = append(sections, formatter.ErrorLine(m.errLine))
	case m.outLine != "":
		sections = append(sections, formatter.Success(m.outLine))
	default:
		sections = append(sections, "")
	}

	sections = append(sections, m.renderStatusBar())
	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer leaves no stale lines.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *appModel) renderHeader() string {
	l := m.state.Lang.Labels()
	title := formatter.StyleHeader.Render(l.AppName)

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	header += "  " + formatter.Dim("["+string(m.state.Lang)+"]")

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if !m.loading {
		if v := m.activeView(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
			}
			if len(m.viewStack) > 1 && !viewCapturesInput(v) {
				hints = append(hints, formatter.Dim("esc: "+m.state.Lang.Labels().Back))
			}
		}
		hints = append(hints, formatter.Dim("ctrl+l: "+m.state.Lang.Labels().ToggleLang))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
