// Package summary displays the result of a finished practice session.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/history"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screen"
	"github.com/gfranca/mestre/internal/ui/components"
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/ui/theme"
)

// SummaryScreen displays the result of one session.
type SummaryScreen struct {
	session exam.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for a session snapshot.
func New(s exam.Session) *SummaryScreen {
	return &SummaryScreen{session: s}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sess := s.session

	var b strings.Builder

	headline := "Session complete!"
	if sess.Status == exam.StatusInProgress {
		headline = "Session paused"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", sess.ExamTitle, sess.Topic)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %d%%",
		sess.TotalQuestions, sess.Score, history.Accuracy(sess))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(statsLine))
	b.WriteString("\n\n")

	barWidth := width / 2
	if barWidth > 48 {
		barWidth = 48
	}
	if sess.TotalQuestions > 0 && barWidth >= 10 {
		bar := components.NewProgressBar("", float64(sess.Score)/float64(sess.TotalQuestions), false, barWidth)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(bar.View()))
		b.WriteString("\n\n")
	}

	// Per-question marks, ✓ green and ✗ red, in answer order.
	var marks []string
	for _, a := range sess.UserAnswers {
		if a.IsCorrect {
			marks = append(marks, lipgloss.NewStyle().Foreground(theme.Success).Render("✓"))
		} else {
			marks = append(marks, lipgloss.NewStyle().Foreground(theme.Error).Render("✗"))
		}
	}
	if len(marks) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(strings.Join(marks, " ")))
		b.WriteString("\n\n")
	}

	wrong := sess.TotalQuestions - sess.Score
	if sess.Status == exam.StatusCompleted && wrong > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d mistake(s) saved for review. Open the session history to retry them.", wrong)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(components.NewButton("Continue", true, nil).View()))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
