package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/router"
)

func testSession() exam.Session {
	return exam.Session{
		ID:             "test-session",
		ExamTitle:      "Test Exam",
		Topic:          "Constitutional Law",
		Score:          3,
		TotalQuestions: 4,
		UserAnswers: []exam.UserAnswer{
			{QuestionID: "q1", SelectedOptionIndex: 0, IsCorrect: true},
			{QuestionID: "q2", SelectedOptionIndex: 1, IsCorrect: true},
			{QuestionID: "q3", SelectedOptionIndex: 2, IsCorrect: false},
			{QuestionID: "q4", SelectedOptionIndex: 3, IsCorrect: true},
		},
		Status: exam.StatusCompleted,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSession())
	if s.Title() != "Result" {
		t.Errorf("Title = %q, want %q", s.Title(), "Result")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSession())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "75%") {
		t.Error("expected the accuracy in the view")
	}
	if !strings.Contains(view, "Session complete!") {
		t.Error("expected the completed headline")
	}
}

func TestSummaryScreen_Display_Paused(t *testing.T) {
	sess := testSession()
	sess.Status = exam.StatusInProgress
	view := New(sess).View(80, 24)
	if !strings.Contains(view, "Session paused") {
		t.Error("expected the paused headline for an in-progress session")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSession())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatalf("expected a command for key %q", code)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected a pop for key %q", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSession())
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
