// Package history maintains the per-exam sequence of practice sessions
// and the pure aggregates derived from it.
package history

import (
	"math"

	"github.com/gfranca/mestre/internal/exam"
)

// Upsert merges a session into a history by id: an existing entry is
// replaced in place (position preserved), otherwise the session is
// appended. The input slice is not mutated.
func Upsert(sessions []exam.Session, s exam.Session) []exam.Session {
	out := make([]exam.Session, len(sessions))
	copy(out, sessions)

	for i, existing := range out {
		if existing.ID == s.ID {
			out[i] = s
			return out
		}
	}
	return append(out, s)
}

// Accuracy returns a session's score as a rounded percentage. A session
// with no questions has zero accuracy.
func Accuracy(s exam.Session) int {
	if s.TotalQuestions == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Score) / float64(s.TotalQuestions)))
}

// OverallAccuracy returns the rounded percentage of correct answers
// across all given sessions, weighted by session size.
func OverallAccuracy(sessions []exam.Session) int {
	var score, total int
	for _, s := range sessions {
		score += s.Score
		total += s.TotalQuestions
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// WrongQuestionIDs returns the ids of every question answered incorrectly
// across the given sessions, deduplicated. A question missed in two
// sessions counts once.
func WrongQuestionIDs(sessions []exam.Session) map[string]bool {
	wrong := make(map[string]bool)
	for _, s := range sessions {
		for _, a := range s.UserAnswers {
			if !a.IsCorrect {
				wrong[a.QuestionID] = true
			}
		}
	}
	return wrong
}
