// Package simulation drives a single practice session from start to
// finish: question sequencing, answer confirmation, scoring, and
// completion detection.
//
// The engine is an explicit state machine. Every transition runs to
// completion synchronously and never fails: calls made in the wrong state
// are rejected as no-ops, so callers never need to handle errors from it.
package simulation

import (
	"time"

	"github.com/gfranca/mestre/internal/exam"
)

// State is the engine's position in the answer lifecycle for the current
// question.
type State int

const (
	// Selecting means no answer has been confirmed for the current question.
	Selecting State = iota
	// Answered means the current question has a recorded answer and the
	// explanation is visible.
	Answered
	// Summary means every question has been answered and the final snapshot
	// was emitted.
	Summary
)

// NoSelection is the tentative-choice value meaning "nothing picked yet".
const NoSelection = -1

// Engine holds the runtime state of one session. Construct with New; the
// zero value is not usable.
type Engine struct {
	id        string
	examTitle string
	topic     string

	questions []exam.Question
	answers   []exam.UserAnswer
	score     int

	pos       int
	tentative int
	state     State

	now func() time.Time
}

// New creates an engine for the given question list, resuming from
// initialAnswers. The score is reconstructed as the count of correct
// initial answers, and the position lands on the first question without a
// recorded answer (index 0 when all are answered). Duplicate initial
// answers for the same question are dropped, first occurrence wins.
func New(id, examTitle, topic string, questions []exam.Question, initialAnswers []exam.UserAnswer) *Engine {
	e := &Engine{
		id:        id,
		examTitle: examTitle,
		topic:     topic,
		questions: questions,
		tentative: NoSelection,
		now:       time.Now,
	}

	seen := make(map[string]bool, len(initialAnswers))
	for _, a := range initialAnswers {
		if seen[a.QuestionID] {
			continue
		}
		seen[a.QuestionID] = true
		e.answers = append(e.answers, a)
		if a.IsCorrect {
			e.score++
		}
	}

	e.pos = 0
	for i, q := range questions {
		if !seen[q.ID] {
			e.pos = i
			break
		}
	}
	e.syncState()
	return e
}

// syncState derives Selecting/Answered for the current position from the
// recorded answers. Summary is never derived here; it is only reached via
// Advance on the last question.
func (e *Engine) syncState() {
	if a, ok := e.AnswerFor(e.Current().ID); ok {
		e.state = Answered
		e.tentative = a.SelectedOptionIndex
		return
	}
	e.state = Selecting
	e.tentative = NoSelection
}

// State returns the current engine state.
func (e *Engine) State() State { return e.state }

// Position returns the index of the current question.
func (e *Engine) Position() int { return e.pos }

// Current returns the question at the current position.
func (e *Engine) Current() exam.Question {
	if len(e.questions) == 0 {
		return exam.Question{}
	}
	return e.questions[e.pos]
}

// Tentative returns the tentatively selected option, or NoSelection.
func (e *Engine) Tentative() int { return e.tentative }

// Score returns the number of correct answers so far.
func (e *Engine) Score() int { return e.score }

// Questions returns the fixed question sequence.
func (e *Engine) Questions() []exam.Question { return e.questions }

// Answers returns the recorded answers in confirmation order.
func (e *Engine) Answers() []exam.UserAnswer { return e.answers }

// AnswerFor returns the recorded answer for a question id, if any.
func (e *Engine) AnswerFor(questionID string) (exam.UserAnswer, bool) {
	for _, a := range e.answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return exam.UserAnswer{}, false
}

// allAnswered reports whether every question has a recorded answer.
func (e *Engine) allAnswered() bool {
	for _, q := range e.questions {
		if _, ok := e.AnswerFor(q.ID); !ok {
			return false
		}
	}
	return true
}

// Select records a tentative choice for the current question. Valid only
// in the Selecting state with an in-range index; anything else is a no-op.
func (e *Engine) Select(optionIndex int) bool {
	if e.state != Selecting {
		return false
	}
	if optionIndex < 0 || optionIndex >= len(e.Current().Options) {
		return false
	}
	e.tentative = optionIndex
	return true
}

// Confirm turns the tentative choice into a recorded answer, scores it,
// and emits an intermediate IN_PROGRESS snapshot for the History Store.
// It is rejected (ok=false, no snapshot) when no tentative choice exists
// or the current question is already answered, which makes double-submits
// harmless.
func (e *Engine) Confirm() (exam.Session, bool) {
	if e.state != Selecting || e.tentative == NoSelection {
		return exam.Session{}, false
	}

	q := e.Current()
	correct := e.tentative == q.CorrectOptionIndex
	e.answers = append(e.answers, exam.UserAnswer{
		QuestionID:          q.ID,
		SelectedOptionIndex: e.tentative,
		IsCorrect:           correct,
	})
	if correct {
		e.score++
	}
	e.state = Answered

	return e.Snapshot(exam.StatusInProgress), true
}

// Advance moves past the current question. Valid only in the Answered
// state. On a non-final question it moves to the next position and
// re-derives Selecting/Answered there (resume semantics). On the last
// question it enters Summary and emits the final COMPLETED snapshot.
func (e *Engine) Advance() (exam.Session, bool) {
	if e.state != Answered {
		return exam.Session{}, false
	}

	if e.pos < len(e.questions)-1 {
		e.pos++
		e.syncState()
		return exam.Session{}, false
	}

	e.state = Summary
	return e.Snapshot(exam.StatusCompleted), true
}

// Exit emits a save-and-leave snapshot from any state: COMPLETED when
// every question has a recorded answer, IN_PROGRESS otherwise. It does
// not change the score or the recorded answers.
func (e *Engine) Exit() exam.Session {
	status := exam.StatusInProgress
	if e.allAnswered() {
		status = exam.StatusCompleted
	}
	return e.Snapshot(status)
}

// Snapshot builds the session record with the given status. The date is
// refreshed on every snapshot so the history shows last activity.
func (e *Engine) Snapshot(status exam.SessionStatus) exam.Session {
	answers := make([]exam.UserAnswer, len(e.answers))
	copy(answers, e.answers)

	return exam.Session{
		ID:             e.id,
		ExamTitle:      e.examTitle,
		Date:           e.now().Format(time.RFC3339),
		Topic:          e.topic,
		Score:          e.score,
		TotalQuestions: len(e.questions),
		Questions:      e.questions,
		UserAnswers:    answers,
		Status:         status,
	}
}
