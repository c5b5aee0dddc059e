package history

import (
	"testing"

	"github.com/gfranca/mestre/internal/exam"
)

func session(id string, answers ...exam.UserAnswer) exam.Session {
	return exam.Session{
		ID:          id,
		ExamTitle:   "X",
		UserAnswers: answers,
	}
}

func TestUpsert_AppendsNewSession(t *testing.T) {
	h := Upsert(nil, session("1"))
	h = Upsert(h, session("2"))

	if len(h) != 2 {
		t.Fatalf("len = %d, want 2", len(h))
	}
	if h[0].ID != "1" || h[1].ID != "2" {
		t.Errorf("order = %s,%s, want 1,2", h[0].ID, h[1].ID)
	}
}

func TestUpsert_ReplacesByIDPreservingPosition(t *testing.T) {
	h := []exam.Session{
		{ID: "1", Score: 0},
		{ID: "2", Score: 0},
		{ID: "3", Score: 0},
	}

	h = Upsert(h, exam.Session{ID: "2", Score: 7})

	if len(h) != 3 {
		t.Fatalf("len = %d, want 3 (no duplicate entry)", len(h))
	}
	if h[1].ID != "2" || h[1].Score != 7 {
		t.Errorf("h[1] = %+v, want id 2 with updated score 7", h[1])
	}
	if h[0].ID != "1" || h[2].ID != "3" {
		t.Error("upsert reordered unrelated entries")
	}
}

func TestUpsert_DoesNotMutateInput(t *testing.T) {
	orig := []exam.Session{{ID: "1", Score: 1}}
	_ = Upsert(orig, exam.Session{ID: "1", Score: 9})

	if orig[0].Score != 1 {
		t.Error("Upsert mutated the input slice")
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{3, 5, 60},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, tt := range tests {
		s := exam.Session{Score: tt.score, TotalQuestions: tt.total}
		if got := Accuracy(s); got != tt.want {
			t.Errorf("Accuracy(%d/%d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestOverallAccuracy_WeightsBySessionSize(t *testing.T) {
	sessions := []exam.Session{
		{Score: 10, TotalQuestions: 10},
		{Score: 0, TotalQuestions: 30},
	}
	if got := OverallAccuracy(sessions); got != 25 {
		t.Errorf("OverallAccuracy = %d, want 25", got)
	}
}

func TestOverallAccuracy_NoSessions(t *testing.T) {
	if got := OverallAccuracy(nil); got != 0 {
		t.Errorf("OverallAccuracy(nil) = %d, want 0", got)
	}
}

func TestWrongQuestionIDs_Deduplicates(t *testing.T) {
	sessions := []exam.Session{
		session("1",
			exam.UserAnswer{QuestionID: "q1", IsCorrect: false},
			exam.UserAnswer{QuestionID: "q5", IsCorrect: true},
		),
		session("2",
			exam.UserAnswer{QuestionID: "q1", IsCorrect: false},
			exam.UserAnswer{QuestionID: "q2", IsCorrect: false},
		),
	}

	wrong := WrongQuestionIDs(sessions)

	if len(wrong) != 2 || !wrong["q1"] || !wrong["q2"] {
		t.Errorf("wrong = %v, want exactly {q1, q2}", wrong)
	}
}

func TestWrongQuestionIDs_Empty(t *testing.T) {
	sessions := []exam.Session{
		session("1", exam.UserAnswer{QuestionID: "q1", IsCorrect: true}),
	}
	if wrong := WrongQuestionIDs(sessions); len(wrong) != 0 {
		t.Errorf("wrong = %v, want empty", wrong)
	}
}
