// Package simulation is the active practice-session screen: one question
// at a time, confirmed answers scored immediately, the board's commentary
// shown before moving on. Every confirmed answer is merged into the
// workspace so quitting mid-session loses nothing.
package simulation

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screen"
	"github.com/gfranca/mestre/internal/screens/summary"
	sim "github.com/gfranca/mestre/internal/simulation"
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/workspace"
)

// RunnerScreen drives one practice session against the engine.
type RunnerScreen struct {
	ws       *workspace.Workspace
	engine   *sim.Engine
	selected int
	quitting bool
}

var _ screen.Screen = (*RunnerScreen)(nil)
var _ screen.KeyHintProvider = (*RunnerScreen)(nil)
var _ screen.EscCapturer = (*RunnerScreen)(nil)

// New creates a runner for an engine the caller already activated in the
// workspace (StartSimulation or ResumeSimulation).
func New(ws *workspace.Workspace, engine *sim.Engine) *RunnerScreen {
	return &RunnerScreen{ws: ws, engine: engine}
}

func (r *RunnerScreen) Init() tea.Cmd {
	return nil
}

func (r *RunnerScreen) Title() string {
	return "Simulation"
}

func (r *RunnerScreen) KeyHints() []layout.KeyHint {
	if r.quitting {
		return []layout.KeyHint{
			{Key: "Y", Description: "Save and leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch r.engine.State() {
	case sim.Answered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Leave"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓/1-5", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

func (r *RunnerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	key := kmsg.String()

	if r.quitting {
		switch key {
		case "y", "Y":
			snap := r.engine.Exit()
			r.ws.FinishSimulation(snap)
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			r.quitting = false
		}
		return r, nil
	}

	if key == "esc" {
		r.quitting = true
		return r, nil
	}

	switch r.engine.State() {
	case sim.Selecting:
		return r.updateSelecting(key)
	case sim.Answered:
		return r.updateAnswered(key)
	}
	return r, nil
}

func (r *RunnerScreen) updateSelecting(key string) (screen.Screen, tea.Cmd) {
	options := len(r.engine.Current().Options)

	switch key {
	case "up", "k":
		if r.selected > 0 {
			r.selected--
		}
	case "down", "j":
		if r.selected < options-1 {
			r.selected++
		}
	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		if idx < options {
			r.selected = idx
			return r.confirm()
		}
	case "enter":
		return r.confirm()
	}
	return r, nil
}

func (r *RunnerScreen) confirm() (screen.Screen, tea.Cmd) {
	if !r.engine.Select(r.selected) {
		return r, nil
	}
	if snap, ok := r.engine.Confirm(); ok {
		r.ws.RecordSession(snap)
	}
	return r, nil
}

func (r *RunnerScreen) updateAnswered(key string) (screen.Screen, tea.Cmd) {
	if key != "enter" {
		return r, nil
	}

	snap, finished := r.engine.Advance()
	if finished {
		r.ws.FinishSimulation(snap)
		return r, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(snap)}
		}
	}

	// Position moved. Reset the cursor, or restore the stored choice when
	// the next question was already answered in a previous run.
	r.selected = 0
	if r.engine.State() == sim.Answered {
		if a, ok := r.engine.AnswerFor(r.engine.Current().ID); ok {
			r.selected = a.SelectedOptionIndex
		}
	}
	return r, nil
}

// answerState reports how the current question was resolved, if it was.
func (r *RunnerScreen) answerState() (exam.UserAnswer, bool) {
	return r.engine.AnswerFor(r.engine.Current().ID)
}

// CapturesEsc is always true: Esc opens the save-and-leave dialog.
func (r *RunnerScreen) CapturesEsc() bool {
	return true
}
