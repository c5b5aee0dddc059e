package guide

import (
	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/examinfo"
)

// analysisReadyMsg is sent when exam research finishes.
type analysisReadyMsg struct {
	Analysis *examinfo.Analysis
	Err      error
}

// roleSubjectsMsg is sent when the role-specific syllabus lookup finishes.
type roleSubjectsMsg struct {
	Role     string
	Subjects []exam.Subject
	Err      error
}
