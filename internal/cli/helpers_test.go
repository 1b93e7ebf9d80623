package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/fift2939-create/ather1/internal/drafting"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
)

const cannedIdeas = `{"ideas":[
	{"name":"Solar Wells","description":"Solar pumps for rural wells","targetGroup":"Farmers","sector":"WASH"},
	{"name":"Mobile Clinics","description":"Clinics on wheels","targetGroup":"IDPs","sector":"Health"},
	{"name":"Catch-up Classes","description":"Remedial education","targetGroup":"Children","sector":"Education"},
	{"name":"Cash for Work","description":"Rehabilitate roads","targetGroup":"Youth","sector":"Livelihoods"}
]}`

const cannedProposal = `{
	"title": "Mobile Clinics for Marib",
	"executiveSummary": "Bring primary care to displaced families.",
	"problemAnalysis": "Clinics are far away.",
	"specificGoals": ["Reach 5000 patients"],
	"swot": {"strengths": ["Trained staff"], "weaknesses": [], "opportunities": [], "threats": ["Fuel prices"]},
	"activities": [{"activity": "Outreach", "details": "Weekly visits", "output": "Visit logs"}],
	"mePlan": {"indicators": ["Patients treated"], "tools": ["Registers"], "mechanism": "Monthly review"},
	"sustainability": "Handover to health office.",
	"budget": [
		{"item": "Doctor", "monthlyCost": 500, "frequency": 6, "quantity": "1 doctor", "total": 0, "category": "Staff"},
		{"item": "Fuel", "monthlyCost": 100, "frequency": 2, "quantity": "2 vehicles", "total": 0, "category": "Transport"},
		{"item": "Stationery", "monthlyCost": 10, "frequency": 1, "quantity": "lot", "total": 0, "category": ""}
	]
}`

// fakeLLM answers each task with canned text, or fails with err. A
// non-empty proposal replaces cannedProposal.
type fakeLLM struct {
	err      error
	proposal string
	calls    map[llm.TaskType]int
}

func (f *fakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if f.calls == nil {
		f.calls = make(map[llm.TaskType]int)
	}
	f.calls[req.Task]++
	if f.err != nil {
		return nil, f.err
	}
	text := cannedIdeas
	if req.Task == llm.TaskProposal {
		text = cannedProposal
		if f.proposal != "" {
			text = f.proposal
		}
	}
	return &llm.GenerateResponse{Text: text, Model: "fake"}, nil
}

func (f *fakeLLM) Available(context.Context) bool { return f.err == nil }

// testApp wires an App whose drafting services run on fake.
func testApp(t *testing.T, fake *fakeLLM) *App {
	t.Helper()
	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Language = locale.English

	return &App{
		Config: cfg,
		Drafters: func(llm.Config) (drafting.Drafters, error) {
			return drafting.Drafters{
				Ideas:     drafting.NewIdeaService(fake),
				Proposals: drafting.NewProposalService(fake),
			}, nil
		},
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
