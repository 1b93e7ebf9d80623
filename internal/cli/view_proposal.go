package cli

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/domain"
)

type proposalTab int

const (
	tabNarrative proposalTab = iota
	tabFinancial
)

// budgetEditedMsg carries the proposal after a budget line edit.
type budgetEditedMsg struct {
	proposal domain.ProjectProposal
}

// proposalView shows the drafted proposal in two tabs. The financial tab
// has a line cursor for editing; both tabs can export.
type proposalView struct {
	state    *SharedState
	proposal domain.ProjectProposal
	tab      proposalTab
	vp       viewport.Model

	// cursor is the flat budget index of the selected line; order lists
	// the flat indices in the order the grouped tables show them.
	cursor int
	order  []int
}

func newProposalView(state *SharedState, p domain.ProjectProposal) *proposalView {
	v := &proposalView{
		state:    state,
		proposal: p,
		vp:       viewport.New(state.Width, state.ContentHeight()-2),
	}
	v.vp.KeyMap = scrollKeyMap()
	v.refresh()
	return v
}

// scrollKeyMap leaves the arrow keys to the budget cursor.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}

func (v *proposalView) ID() ViewID    { return ViewProposal }
func (v *proposalView) Title() string { return formatter.Truncate(v.proposal.Title, 40) }

func (v *proposalView) ShortHelp() []key.Binding {
	l := v.state.Lang.Labels()
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", l.Narrative+"/"+l.Financial)),
	}
	if v.tab == tabFinancial {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "line")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", l.EditLine)),
		)
	}
	return append(bindings,
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", l.DownloadWord)),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", l.DownloadExcel)),
	)
}

func (v *proposalView) Init() tea.Cmd { return nil }

func (v *proposalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight() - 2
		v.refresh()
		return v, nil

	case langChangedMsg:
		v.refresh()
		return v, nil

	case budgetEditedMsg:
		v.proposal = msg.proposal
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *proposalView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		if v.tab == tabNarrative {
			v.tab = tabFinancial
		} else {
			v.tab = tabNarrative
		}
		v.vp.GotoTop()
		v.refresh()
		return v, nil
	case "w":
		return v, v.export(true, false)
	case "x":
		return v, v.export(false, true)
	}

	if v.tab == tabFinancial {
		switch msg.String() {
		case "up", "k":
			v.moveCursor(-1)
			return v, nil
		case "down", "j":
			v.moveCursor(1)
			return v, nil
		case "enter", "e":
			if v.cursor < len(v.proposal.Budget) {
				return v, pushView(newBudgetEditView(v.state, v.proposal, v.cursor))
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// moveCursor steps through the lines in display order.
func (v *proposalView) moveCursor(delta int) {
	pos := slices.Index(v.order, v.cursor)
	next := pos + delta
	if pos < 0 || next < 0 || next >= len(v.order) {
		return
	}
	v.cursor = v.order[next]
	v.refresh()
}

// refresh re-renders the active tab. Grouping and display order are
// recomputed every time so edits and language changes are always reflected.
func (v *proposalView) refresh() {
	lang := v.state.Lang
	v.order = domain.DisplayOrder(v.proposal.Budget, lang)

	if v.tab == tabNarrative {
		v.vp.SetContent(formatter.Align(formatter.FormatNarrative(v.proposal, lang), v.vp.Width, lang))
		return
	}
	content := formatter.Align(formatter.FormatBudget(v.proposal, lang, v.cursor), v.vp.Width, lang)
	v.vp.SetContent(content)
	v.scrollToCursor(content)
}

// scrollToCursor keeps the selected budget row inside the viewport.
func (v *proposalView) scrollToCursor(content string) {
	row := -1
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(line, formatter.CursorMarker) {
			row = i
			break
		}
	}
	switch {
	case row < 0 || v.vp.Height <= 0:
	case row < v.vp.YOffset:
		v.vp.SetYOffset(row)
	case row >= v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(row - v.vp.Height + 1)
	}
}

func (v *proposalView) export(docx, xlsx bool) tea.Cmd {
	p := v.proposal
	lang := v.state.Lang
	dir := v.state.OutDir
	return func() tea.Msg {
		paths, err := exportFiles(p, lang, dir, docx, xlsx)
		if err != nil {
			return outputMsg{err: err}
		}
		return outputMsg{text: lang.Labels().Exported + " " + strings.Join(paths, ", ")}
	}
}

func (v *proposalView) View() string {
	l := v.state.Lang.Labels()
	narrative, financial := formatter.StyleTab, formatter.StyleTab
	if v.tab == tabNarrative {
		narrative = formatter.StyleTabOn
	} else {
		financial = formatter.StyleTabOn
	}
	tabs := narrative.Render(l.Narrative) + " " + financial.Render(l.Financial) +
		"   " + formatter.FormatGrandTotal(v.proposal, v.state.Lang)

	return tabs + "\n\n" + v.vp.View()
}
