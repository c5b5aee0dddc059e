package study

import "github.com/gfranca/mestre/internal/exam"

// lessonReadyMsg is sent when a lesson has been generated.
type lessonReadyMsg struct {
	Content exam.StudyContent
	Err     error
}

// expandReadyMsg is sent when the advanced appendix has been generated.
type expandReadyMsg struct {
	Text string
	Err  error
}

// tutorReadyMsg is sent when the tutor answered a doubt.
type tutorReadyMsg struct {
	Question string
	Answer   string
	Err      error
}

// stepReadyMsg is sent when the step-by-step breakdown is ready.
type stepReadyMsg struct {
	Text string
	Err  error
}
