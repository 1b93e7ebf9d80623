package cli

import (
	"os"
	"testing"

	"github.com/fift2939-create/ather1/internal/locale"
	"github.com/fift2939-create/ather1/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, shared state, message lines) the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app in English, sizes the terminal
// and drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app, locale.English)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// SubmitIdeas fills the input view directly and submits it. Driving the
// multi-line text field key by key adds nothing the huh tests don't cover.
func (d *TestDriver) SubmitIdeas(vision, country, categories string) {
	d.T.Helper()
	in, ok := d.appModel().activeView().(*inputView)
	if !ok {
		d.T.Fatalf("active view is %v, not the input view", d.ActiveViewID())
	}
	in.vision = vision
	in.country = country
	in.categories = categories
	d.Send(in.submit()())
}

// DraftSecondIdea goes from the input view to the proposal view for
// "Mobile Clinics".
func (d *TestDriver) DraftSecondIdea() {
	d.T.Helper()
	d.SubmitIdeas("primary care for displaced families", "Yemen", "")
	d.PressDown()
	d.PressEnter()
}

func (d *TestDriver) appModel() *appModel {
	m := d.Model.(appModel)
	return &m
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.appModel().activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state pointer.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// ErrLine returns the error line, empty when none is shown.
func (d *TestDriver) ErrLine() string {
	return d.appModel().errLine
}

// OutLine returns the success line, empty when none is shown.
func (d *TestDriver) OutLine() string {
	return d.appModel().outLine
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
