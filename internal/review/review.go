// Package review builds the question list for a "review my mistakes"
// session from an exam's practice history.
package review

import (
	"errors"
	"math/rand/v2"

	"github.com/gfranca/mestre/internal/exam"
)

// ErrNoMistakes is returned when the history contains no incorrect
// answers. Callers must not start a session in that case.
var ErrNoMistakes = errors.New("no recorded mistakes to review")

// Build collects every question answered incorrectly across the given
// sessions, deduplicated by question id. When the same question was
// missed in more than one session, the first recording wins, so the text
// and explanation come from the session that first logged the miss. The
// result is shuffled; order is not meaningful.
func Build(sessions []exam.Session) ([]exam.Question, error) {
	seen := make(map[string]bool)
	var questions []exam.Question

	for _, s := range sessions {
		for _, a := range s.UserAnswers {
			if a.IsCorrect || seen[a.QuestionID] {
				continue
			}
			for _, q := range s.Questions {
				if q.ID == a.QuestionID {
					seen[q.ID] = true
					questions = append(questions, q)
					break
				}
			}
		}
	}

	if len(questions) == 0 {
		return nil, ErrNoMistakes
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions, nil
}
