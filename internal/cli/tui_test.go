package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/export"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
)

func TestTUI_StartsOnInputWithCredential(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &fakeLLM{}))

	assert.Equal(t, ViewInput, d.ActiveViewID())
	assert.True(t, d.ViewContains(locale.English.Labels().Welcome))
	assert.True(t, d.ViewContains("[en]"))
}

func TestTUI_SessionKeyUnlocksInput(t *testing.T) {
	app := testApp(t, &fakeLLM{})
	app.Config.APIKey = ""

	d := NewTestDriver(t, app)
	require.Equal(t, ViewSetup, d.ActiveViewID())
	assert.True(t, d.ViewContains("ATHAR_API_KEY"))

	d.PressKey('k')
	require.Equal(t, ViewForm, d.ActiveViewID())

	d.Type("session-key")
	d.PressEnter()

	assert.Equal(t, ViewInput, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, "session-key", d.State().Config.APIKey)
	assert.Empty(t, app.Config.APIKey, "key is held by the session only")
	assert.Equal(t, locale.English.Labels().SetupKeySaved, d.OutLine())
}

func TestTUI_SessionKeyEscCancels(t *testing.T) {
	app := testApp(t, &fakeLLM{})
	app.Config.APIKey = ""

	d := NewTestDriver(t, app)
	d.PressKey('k')
	d.PressEsc()

	assert.Equal(t, ViewSetup, d.ActiveViewID())
	assert.Empty(t, d.State().Config.APIKey)
}

func TestTUI_IdeasToProposal(t *testing.T) {
	fake := &fakeLLM{}
	d := NewTestDriver(t, testApp(t, fake))

	d.SubmitIdeas("primary care for displaced families", "Yemen", "Staff, Transport")
	require.Equal(t, ViewIdeas, d.ActiveViewID())
	assert.True(t, d.ViewContains("1. Solar Wells"))
	assert.True(t, d.ViewContains("4. Cash for Work"))

	d.PressDown()
	d.PressEnter()

	require.Equal(t, ViewProposal, d.ActiveViewID())
	assert.Equal(t, 3, d.ViewStackLen())
	assert.Equal(t, 1, fake.calls[llm.TaskIdeas])
	assert.Equal(t, 1, fake.calls[llm.TaskProposal])
	assert.True(t, d.ViewContains("Mobile Clinics for Marib"))
	assert.True(t, d.ViewContains(locale.English.Labels().ExecSummary))

	d.PressTab()
	assert.True(t, d.ViewContains("Transport"))
	assert.True(t, d.ViewContains(locale.English.GeneralItems()))
	assert.True(t, d.ViewContains("3,410.00"))
}

func TestTUI_CallFailureKeepsScreen(t *testing.T) {
	fake := &fakeLLM{err: llm.ErrTimeout}
	d := NewTestDriver(t, testApp(t, fake))

	d.SubmitIdeas("v", "Yemen", "")

	assert.Equal(t, ViewInput, d.ActiveViewID())
	assert.Contains(t, d.ErrLine(), locale.English.Labels().IdeasError)
	assert.True(t, d.ViewContains(locale.English.Labels().IdeasError))

	d.PressKey('a')
	assert.Empty(t, d.ErrLine(), "next key clears the error")
}

func TestTUI_DraftFailureStaysOnIdeas(t *testing.T) {
	fake := &fakeLLM{}
	d := NewTestDriver(t, testApp(t, fake))
	d.SubmitIdeas("v", "Yemen", "")
	require.Equal(t, ViewIdeas, d.ActiveViewID())

	fake.err = llm.ErrInvalidOutput
	d.PressEnter()

	assert.Equal(t, ViewIdeas, d.ActiveViewID())
	assert.Contains(t, d.ErrLine(), locale.English.Labels().DraftError)
}

func TestTUI_BackDiscardsIdeas(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &fakeLLM{}))
	d.SubmitIdeas("v", "Yemen", "")
	require.Equal(t, 2, d.ViewStackLen())

	d.PressEsc()
	assert.Equal(t, ViewInput, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_LanguageToggle(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &fakeLLM{}))
	d.SubmitIdeas("v", "Yemen", "")

	d.PressKey('l')
	assert.Equal(t, locale.Arabic, d.State().Lang)
	assert.True(t, d.ViewContains("[ar]"))
	assert.True(t, d.ViewContains(locale.Arabic.Labels().IdeasTitle))

	d.Press(tea.KeyCtrlL)
	assert.Equal(t, locale.English, d.State().Lang)
}

func TestTUI_ExportDocument(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &fakeLLM{}))
	dir := t.TempDir()
	d.State().OutDir = dir

	d.DraftSecondIdea()
	require.Equal(t, ViewProposal, d.ActiveViewID())

	d.PressKey('w')

	path := filepath.Join(dir, export.DocumentFileName("Mobile Clinics for Marib"))
	assert.Eventually(t, func() bool {
		return fileExists(path)
	}, time.Second, 10*time.Millisecond)
}

func TestTUI_BudgetEditFormOpensAndCancels(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &fakeLLM{}))
	d.DraftSecondIdea()
	d.PressTab()

	d.PressDown()
	d.PressKey('e')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.True(t, d.ViewContains("Fuel"))

	d.PressEsc()
	assert.Equal(t, ViewProposal, d.ActiveViewID())
	assert.True(t, d.ViewContains("3,410.00"))
}

func TestTUI_BudgetEditedRefreshesTotals(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &fakeLLM{}))
	d.DraftSecondIdea()
	d.PressTab()

	pv := d.appModel().activeView().(*proposalView)
	edited, err := domain.UpdateLineItem(pv.proposal, 0, domain.FieldFrequency, "8")
	require.NoError(t, err)

	d.Send(budgetEditedMsg{proposal: edited})
	assert.True(t, d.ViewContains("4,410.00"))
}

func TestAppModel_LoadingIgnoresKeys(t *testing.T) {
	app := testApp(t, &fakeLLM{})
	m := newAppModel(app, locale.English)
	m.viewStack = append(m.viewStack, newIdeasView(m.state, ideaRequest{}, nil))

	model, cmd := m.Update(callMsg{label: "working", run: func() (tea.Msg, error) { return nil, nil }})
	m = model.(appModel)
	require.NotNil(t, cmd)
	require.True(t, m.loading)
	assert.Contains(t, m.View(), "working")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 2, "esc ignored while loading")

	model, cmd = m.Update(callMsg{label: "second"})
	m = model.(appModel)
	assert.Nil(t, cmd, "a second call is refused")
	assert.Equal(t, "working", m.loadingLabel)

	model, _ = m.Update(callDoneMsg{})
	m = model.(appModel)
	assert.False(t, m.loading)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_MissingCredentialOpensSetup(t *testing.T) {
	m := newAppModel(testApp(t, &fakeLLM{}), locale.English)

	err := llm.DefaultConfig().RequireCredential(locale.English)
	model, _ := m.Update(callDoneMsg{err: err})
	m = model.(appModel)

	require.Len(t, m.viewStack, 2)
	assert.Equal(t, ViewSetup, m.activeView().ID())
	assert.Empty(t, m.errLine)
}

func TestApplyLineEdits(t *testing.T) {
	p := domain.ProjectProposal{Budget: []domain.BudgetLineItem{
		{Item: "Doctor", MonthlyCost: 500, Frequency: 6, Quantity: "1 doctor", Total: 3000},
		{Item: "Fuel", MonthlyCost: 100, Frequency: 2, Quantity: "2 vehicles", Total: 400},
	}}
	orig := p.Budget[0]

	values := make(map[domain.BudgetField]*string)
	for _, f := range editableFields {
		v := orig.Value(f)
		values[f] = &v
	}
	*values[domain.FieldFrequency] = "8"
	*values[domain.FieldCategory] = "Staff"

	got, err := applyLineEdits(p, 0, orig, values)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, got.Budget[0].Total)
	assert.Equal(t, domain.Category("Staff"), got.Budget[0].Category)
	assert.Equal(t, 3000.0, p.Budget[0].Total, "input proposal untouched")
	assert.Equal(t, 400.0, got.Budget[1].Total)
}

// interleavedProposal lists Staff, Transport, Staff so the grouped tables
// show the lines in a different order than the budget list.
const interleavedProposal = `{
	"title": "Mobile Clinics for Marib",
	"executiveSummary": "Bring primary care to displaced families.",
	"swot": {"strengths": [], "weaknesses": [], "opportunities": [], "threats": []},
	"activities": [],
	"mePlan": {"indicators": [], "tools": [], "mechanism": ""},
	"budget": [
		{"item": "Doctor", "monthlyCost": 500, "frequency": 6, "quantity": "1", "category": "Staff"},
		{"item": "Fuel", "monthlyCost": 100, "frequency": 2, "quantity": "2", "category": "Transport"},
		{"item": "Nurse", "monthlyCost": 300, "frequency": 6, "quantity": "2", "category": "Staff"}
	]
}`

// selectedBudgetRow returns the rendered budget row carrying the cursor.
func selectedBudgetRow(t *testing.T, d *TestDriver) string {
	t.Helper()
	var rows []string
	for _, line := range strings.Split(d.View(), "\n") {
		if strings.Contains(line, formatter.CursorMarker) {
			rows = append(rows, line)
		}
	}
	require.Len(t, rows, 1, "exactly one visible selected row")
	return rows[0]
}

func TestTUI_BudgetCursorFollowsGroupedRows(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &fakeLLM{proposal: interleavedProposal}))
	d.DraftSecondIdea()
	require.Equal(t, ViewProposal, d.ActiveViewID())

	// Short terminal: the Transport table starts below the first screen.
	d.Send(tea.WindowSizeMsg{Width: 120, Height: 14})
	d.PressTab()

	assert.Contains(t, selectedBudgetRow(t, d), "Doctor")

	d.PressDown()
	assert.Contains(t, selectedBudgetRow(t, d), "Nurse")

	d.PressDown()
	assert.Contains(t, selectedBudgetRow(t, d), "Fuel", "row scrolled into view")

	d.PressDown()
	assert.Contains(t, selectedBudgetRow(t, d), "Fuel", "cursor stops at the last row")

	d.PressUp()
	assert.Contains(t, selectedBudgetRow(t, d), "Nurse")

	pv := d.appModel().activeView().(*proposalView)
	assert.Equal(t, 2, pv.cursor, "cursor keeps the flat budget index")

	d.PressKey('e')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.True(t, d.ViewContains("Nurse"))
}

func TestTUI_BudgetCursorRegroupsAfterEdit(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &fakeLLM{proposal: interleavedProposal}))
	d.DraftSecondIdea()
	d.PressTab()

	pv := d.appModel().activeView().(*proposalView)
	edited, err := domain.UpdateLineItem(pv.proposal, 0, domain.FieldCategory, "Transport")
	require.NoError(t, err)
	d.Send(budgetEditedMsg{proposal: edited})

	// Groups are now Transport (Doctor, Fuel) then Staff (Nurse).
	assert.Contains(t, selectedBudgetRow(t, d), "Doctor")
	d.PressDown()
	assert.Contains(t, selectedBudgetRow(t, d), "Fuel")
	d.PressDown()
	assert.Contains(t, selectedBudgetRow(t, d), "Nurse")
}
