package simulation

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screens/summary"
	sim "github.com/gfranca/mestre/internal/simulation"
	"github.com/gfranca/mestre/internal/workspace"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []exam.Question {
	return []exam.Question{
		{
			ID:                 "q1",
			Text:               "Which article opens the constitution?",
			Options:            []string{"Art. 1", "Art. 2", "Art. 3", "Art. 4", "Art. 5"},
			CorrectOptionIndex: 0,
			Explanation:        "It is the first article.",
			Topic:              "Constitutional Law",
		},
		{
			ID:                 "q2",
			Text:               "Which option is correct?",
			Options:            []string{"A", "B", "C", "D", "E"},
			CorrectOptionIndex: 2,
			Explanation:        "C is correct.",
			Topic:              "Constitutional Law",
		},
	}
}

func testRunner() (*RunnerScreen, *workspace.Workspace, *sim.Engine) {
	ws := workspace.New(nil)
	eng := sim.New("test-session", "Test Exam", "Constitutional Law", testQuestions(), nil)
	ws.StartSimulation(eng.Exit())
	return New(ws, eng), ws, eng
}

func TestRunnerScreen_Title(t *testing.T) {
	r, _, _ := testRunner()
	if r.Title() != "Simulation" {
		t.Errorf("Title = %q, want %q", r.Title(), "Simulation")
	}
}

func TestRunnerScreen_View(t *testing.T) {
	r, _, _ := testRunner()
	if r.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestRunnerScreen_DigitConfirms(t *testing.T) {
	r, ws, eng := testRunner()

	scr, _ := r.Update(keyPress('1'))
	rr := scr.(*RunnerScreen)

	if eng.State() != sim.Answered {
		t.Fatalf("state = %v, want Answered", eng.State())
	}
	a, ok := rr.answerState()
	if !ok {
		t.Fatal("expected a recorded answer for the current question")
	}
	if !a.IsCorrect {
		t.Error("expected option 1 to be scored correct")
	}
	sessions := ws.SessionsFor("Test Exam")
	if len(sessions) != 1 || len(sessions[0].UserAnswers) != 1 {
		t.Errorf("expected the confirmed answer to be merged into the history, got %+v", sessions)
	}
}

func TestRunnerScreen_ArrowsMoveCursor(t *testing.T) {
	r, _, _ := testRunner()

	scr, _ := r.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyUp))
	rr := scr.(*RunnerScreen)

	if rr.selected != 1 {
		t.Errorf("selected = %d, want 1", rr.selected)
	}
}

func TestRunnerScreen_QuitConfirm(t *testing.T) {
	r, _, _ := testRunner()

	scr, _ := r.Update(specialKey(tea.KeyEscape))
	rr := scr.(*RunnerScreen)
	if !rr.quitting {
		t.Fatal("expected the save-and-leave dialog after Esc")
	}

	scr, _ = rr.Update(keyPress('n'))
	rr = scr.(*RunnerScreen)
	if rr.quitting {
		t.Error("expected N to dismiss the dialog")
	}
}

func TestRunnerScreen_QuitConfirm_SavesAndPops(t *testing.T) {
	r, ws, _ := testRunner()

	scr, _ := r.Update(keyPress('1'))
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after confirming the quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop after leaving the session")
	}
	if ws.Context.ActiveSimID != "" {
		t.Error("expected the active session to be cleared on leave")
	}
	sessions := ws.SessionsFor("Test Exam")
	if len(sessions) != 1 || sessions[0].Status != exam.StatusInProgress {
		t.Errorf("expected one in-progress session in history, got %+v", sessions)
	}
}

func TestRunnerScreen_FinishPushesSummary(t *testing.T) {
	r, ws, _ := testRunner()

	scr, _ := r.Update(keyPress('1'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('3'))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected a command after the last question")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected a push after the last question")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("pushed screen = %T, want *summary.SummaryScreen", msg.Screen)
	}

	sessions := ws.SessionsFor("Test Exam")
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	got := sessions[0]
	if got.Status != exam.StatusCompleted {
		t.Errorf("status = %q, want %q", got.Status, exam.StatusCompleted)
	}
	if got.Score != 2 {
		t.Errorf("score = %d, want 2", got.Score)
	}
	if ws.Context.ActiveSimID != "" {
		t.Error("expected the active session to be cleared on completion")
	}
}

func TestRunnerScreen_KeyHints(t *testing.T) {
	r, _, _ := testRunner()
	if len(r.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	scr, _ := r.Update(keyPress('1'))
	rr := scr.(*RunnerScreen)
	if len(rr.KeyHints()) == 0 {
		t.Error("expected non-empty key hints in the answered state")
	}
}

func TestRunnerScreen_CapturesEsc(t *testing.T) {
	r, _, _ := testRunner()
	if !r.CapturesEsc() {
		t.Error("expected the runner to own Esc")
	}
}
