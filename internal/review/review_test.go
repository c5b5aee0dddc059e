package review

import (
	"errors"
	"testing"

	"github.com/gfranca/mestre/internal/exam"
)

func question(id, text string) exam.Question {
	return exam.Question{
		ID:      id,
		Text:    text,
		Options: []string{"A", "B", "C", "D", "E"},
	}
}

func TestBuild_CollectsMissedQuestions(t *testing.T) {
	sessions := []exam.Session{
		{
			ID:        "1",
			Questions: []exam.Question{question("q1", "first"), question("q2", "second")},
			UserAnswers: []exam.UserAnswer{
				{QuestionID: "q1", IsCorrect: false},
				{QuestionID: "q2", IsCorrect: true},
			},
		},
		{
			ID:        "2",
			Questions: []exam.Question{question("q3", "third")},
			UserAnswers: []exam.UserAnswer{
				{QuestionID: "q3", IsCorrect: false},
			},
		},
	}

	qs, err := Build(sessions)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
	got := map[string]bool{}
	for _, q := range qs {
		got[q.ID] = true
	}
	if !got["q1"] || !got["q3"] {
		t.Errorf("questions = %v, want q1 and q3", got)
	}
}

func TestBuild_FirstOccurrenceWins(t *testing.T) {
	// q1 missed in both sessions with different wording; the first
	// session's version must be kept.
	sessions := []exam.Session{
		{
			ID:          "1",
			Questions:   []exam.Question{question("q1", "original wording")},
			UserAnswers: []exam.UserAnswer{{QuestionID: "q1", IsCorrect: false}},
		},
		{
			ID:          "2",
			Questions:   []exam.Question{question("q1", "regenerated wording")},
			UserAnswers: []exam.UserAnswer{{QuestionID: "q1", IsCorrect: false}},
		},
	}

	qs, err := Build(sessions)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1 (deduplicated)", len(qs))
	}
	if qs[0].Text != "original wording" {
		t.Errorf("text = %q, want the first session's version", qs[0].Text)
	}
}

func TestBuild_NoMistakes(t *testing.T) {
	sessions := []exam.Session{
		{
			ID:          "1",
			Questions:   []exam.Question{question("q1", "first")},
			UserAnswers: []exam.UserAnswer{{QuestionID: "q1", IsCorrect: true}},
		},
	}

	if _, err := Build(sessions); !errors.Is(err, ErrNoMistakes) {
		t.Errorf("err = %v, want ErrNoMistakes", err)
	}
}

func TestBuild_EmptyHistory(t *testing.T) {
	if _, err := Build(nil); !errors.Is(err, ErrNoMistakes) {
		t.Errorf("err = %v, want ErrNoMistakes", err)
	}
}

func TestBuild_UnresolvableAnswerSkipped(t *testing.T) {
	// An answer whose question is missing from the session cannot be
	// reviewed and must not produce a phantom entry.
	sessions := []exam.Session{
		{
			ID:          "1",
			Questions:   []exam.Question{question("q1", "first")},
			UserAnswers: []exam.UserAnswer{{QuestionID: "orphan", IsCorrect: false}},
		},
	}

	if _, err := Build(sessions); !errors.Is(err, ErrNoMistakes) {
		t.Errorf("err = %v, want ErrNoMistakes for unresolvable misses", err)
	}
}
