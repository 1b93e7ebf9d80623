package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

type replaceViewMsg struct {
	view View
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// outputMsg is a one-line result shown under the active view until the
// next key press. A non-nil err is shown as the error line instead.
type outputMsg struct {
	text string
	err  error
}

// langChangedMsg is broadcast to every view after the language toggles.
type langChangedMsg struct{}

// sessionKeyMsg carries a credential typed into the setup screen.
type sessionKeyMsg struct {
	key string
}

// callMsg asks the appModel to run a drafting call behind the loading
// screen. Only one call runs at a time.
type callMsg struct {
	label string
	run   func() (tea.Msg, error)
}

// callDoneMsg reports the end of a call. On success result is delivered
// to the active view.
type callDoneMsg struct {
	result tea.Msg
	err    error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func startCall(label string, run func() (tea.Msg, error)) tea.Cmd {
	return func() tea.Msg { return callMsg{label: label, run: run} }
}
