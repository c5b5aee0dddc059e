package simulation

import (
	"testing"

	"github.com/gfranca/mestre/internal/exam"
)

func testQuestions(n int) []exam.Question {
	qs := make([]exam.Question, n)
	for i := range qs {
		qs[i] = exam.Question{
			ID:                 string(rune('a' + i)),
			Text:               "question",
			Options:            []string{"A", "B", "C", "D", "E"},
			CorrectOptionIndex: i % exam.OptionCount,
			Topic:              "General",
		}
	}
	return qs
}

func answer(e *Engine, t *testing.T, idx int) exam.Session {
	t.Helper()
	if !e.Select(idx) {
		t.Fatalf("Select(%d) rejected in state %v", idx, e.State())
	}
	snap, ok := e.Confirm()
	if !ok {
		t.Fatal("Confirm rejected")
	}
	return snap
}

func TestFullRun_ScoreAndCompletion(t *testing.T) {
	// Correct answers at positions 0, 2, 4; wrong at 1, 3.
	qs := testQuestions(5)
	e := New("sim-1", "Federal Police", "General", qs, nil)

	for i, q := range qs {
		pick := q.CorrectOptionIndex
		if i == 1 || i == 3 {
			pick = (q.CorrectOptionIndex + 1) % exam.OptionCount
		}
		snap := answer(e, t, pick)
		if snap.Status != exam.StatusInProgress {
			t.Errorf("question %d: intermediate status = %s, want IN_PROGRESS", i, snap.Status)
		}
		final, done := e.Advance()
		if i < len(qs)-1 {
			if done {
				t.Fatalf("question %d: finished early", i)
			}
		} else {
			if !done {
				t.Fatal("Advance on last question did not finish")
			}
			if final.Status != exam.StatusCompleted {
				t.Errorf("final status = %s, want COMPLETED", final.Status)
			}
			if final.Score != 3 {
				t.Errorf("final score = %d, want 3", final.Score)
			}
			if len(final.UserAnswers) != 5 {
				t.Errorf("answers = %d, want 5", len(final.UserAnswers))
			}
		}
	}

	if e.State() != Summary {
		t.Errorf("state = %v, want Summary", e.State())
	}
}

func TestScoreMatchesCorrectAnswerCount(t *testing.T) {
	qs := testQuestions(4)
	e := New("sim-1", "X", "General", qs, nil)

	for _, q := range qs {
		answer(e, t, (q.CorrectOptionIndex+1)%exam.OptionCount)
		e.Advance()
	}

	correct := 0
	for _, a := range e.Answers() {
		if a.IsCorrect {
			correct++
		}
	}
	if e.Score() != correct {
		t.Errorf("score = %d, correct answers = %d", e.Score(), correct)
	}
}

func TestConfirm_NoSelectionRejected(t *testing.T) {
	e := New("sim-1", "X", "General", testQuestions(2), nil)

	if _, ok := e.Confirm(); ok {
		t.Error("Confirm with no tentative selection should be rejected")
	}
	if len(e.Answers()) != 0 || e.Score() != 0 {
		t.Error("rejected Confirm mutated state")
	}
}

func TestConfirm_Idempotent(t *testing.T) {
	e := New("sim-1", "X", "General", testQuestions(2), nil)
	answer(e, t, 0)

	if _, ok := e.Confirm(); ok {
		t.Error("second Confirm without Advance should be rejected")
	}
	if len(e.Answers()) != 1 {
		t.Errorf("answers = %d, want 1", len(e.Answers()))
	}
	if e.Score() != 1 {
		t.Errorf("score = %d, want 1", e.Score())
	}
}

func TestSelect_NoOpWhenAnswered(t *testing.T) {
	e := New("sim-1", "X", "General", testQuestions(2), nil)
	answer(e, t, 1)

	if e.Select(3) {
		t.Error("Select after Confirm should be a no-op")
	}
	if e.Tentative() != 1 {
		t.Errorf("tentative = %d, want 1", e.Tentative())
	}
}

func TestSelect_OutOfRangeRejected(t *testing.T) {
	e := New("sim-1", "X", "General", testQuestions(1), nil)

	if e.Select(-1) || e.Select(exam.OptionCount) {
		t.Error("out-of-range Select should be rejected")
	}
}

func TestResume_LandsOnFirstUnanswered(t *testing.T) {
	qs := testQuestions(4)
	initial := []exam.UserAnswer{
		{QuestionID: qs[0].ID, SelectedOptionIndex: 0, IsCorrect: true},
		{QuestionID: qs[1].ID, SelectedOptionIndex: 2, IsCorrect: false},
		{QuestionID: qs[3].ID, SelectedOptionIndex: 3, IsCorrect: false},
	}
	e := New("sim-1", "X", "General", qs, initial)

	if e.Position() != 2 {
		t.Errorf("position = %d, want 2", e.Position())
	}
	if e.State() != Selecting {
		t.Errorf("state = %v, want Selecting", e.State())
	}
	if e.Score() != 1 {
		t.Errorf("score = %d, want 1", e.Score())
	}
}

func TestResume_AllAnswered(t *testing.T) {
	qs := testQuestions(3)
	initial := make([]exam.UserAnswer, len(qs))
	for i, q := range qs {
		initial[i] = exam.UserAnswer{QuestionID: q.ID, SelectedOptionIndex: q.CorrectOptionIndex, IsCorrect: true}
	}
	e := New("sim-1", "X", "General", qs, initial)

	if e.Position() != 0 {
		t.Errorf("position = %d, want 0", e.Position())
	}
	if e.State() != Answered {
		t.Errorf("state = %v, want Answered", e.State())
	}
}

func TestResume_DuplicateInitialAnswersDropped(t *testing.T) {
	qs := testQuestions(2)
	initial := []exam.UserAnswer{
		{QuestionID: qs[0].ID, SelectedOptionIndex: qs[0].CorrectOptionIndex, IsCorrect: true},
		{QuestionID: qs[0].ID, SelectedOptionIndex: 4, IsCorrect: false},
	}
	e := New("sim-1", "X", "General", qs, initial)

	if len(e.Answers()) != 1 {
		t.Errorf("answers = %d, want 1 (duplicate dropped)", len(e.Answers()))
	}
	if e.Score() != 1 {
		t.Errorf("score = %d, want 1 (first occurrence wins)", e.Score())
	}
}

func TestAdvance_RederivesStateOnResumedRun(t *testing.T) {
	qs := testQuestions(3)
	initial := []exam.UserAnswer{
		{QuestionID: qs[1].ID, SelectedOptionIndex: 1, IsCorrect: false},
	}
	e := New("sim-1", "X", "General", qs, initial)

	// Position 0 is unanswered, answer it and advance onto the
	// already-answered question 1.
	answer(e, t, qs[0].CorrectOptionIndex)
	e.Advance()

	if e.Position() != 1 {
		t.Fatalf("position = %d, want 1", e.Position())
	}
	if e.State() != Answered {
		t.Errorf("state = %v, want Answered (pre-recorded answer)", e.State())
	}
}

func TestExit_PartialIsInProgress(t *testing.T) {
	qs := testQuestions(5)
	e := New("sim-7", "X", "General", qs, nil)

	answer(e, t, qs[0].CorrectOptionIndex)
	e.Advance()
	answer(e, t, qs[1].CorrectOptionIndex)

	snap := e.Exit()
	if snap.Status != exam.StatusInProgress {
		t.Errorf("status = %s, want IN_PROGRESS", snap.Status)
	}
	if len(snap.UserAnswers) != 2 {
		t.Errorf("answers = %d, want 2", len(snap.UserAnswers))
	}
	if snap.ID != "sim-7" || snap.TotalQuestions != 5 {
		t.Errorf("snapshot identity fields wrong: %+v", snap)
	}
}

func TestExit_AllAnsweredIsCompleted(t *testing.T) {
	qs := testQuestions(2)
	e := New("sim-1", "X", "General", qs, nil)
	for range qs {
		answer(e, t, 0)
		e.Advance()
	}

	if snap := e.Exit(); snap.Status != exam.StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", snap.Status)
	}
}

func TestSnapshotAnswersAreACopy(t *testing.T) {
	qs := testQuestions(2)
	e := New("sim-1", "X", "General", qs, nil)
	snap := answer(e, t, 0)

	snap.UserAnswers[0].IsCorrect = !snap.UserAnswers[0].IsCorrect
	if got, _ := e.AnswerFor(qs[0].ID); got.IsCorrect == snap.UserAnswers[0].IsCorrect {
		t.Error("snapshot shares answer storage with the engine")
	}
}
