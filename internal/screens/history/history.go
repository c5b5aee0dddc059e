// Package history lists the recorded sessions of one exam: resume the
// unfinished ones, reopen finished results, and build an error-review
// session from every mistake in the history.
package history

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/history"
	"github.com/gfranca/mestre/internal/review"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screen"
	runner "github.com/gfranca/mestre/internal/screens/simulation"
	"github.com/gfranca/mestre/internal/screens/summary"
	sim "github.com/gfranca/mestre/internal/simulation"
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/ui/theme"
	"github.com/gfranca/mestre/internal/workspace"
)

// HistoryScreen lists sessions for one exam title.
type HistoryScreen struct {
	ws        *workspace.Workspace
	examTitle string
	selected  int
	notice    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a history screen for the given exam.
func New(ws *workspace.Workspace, examTitle string) *HistoryScreen {
	return &HistoryScreen{ws: ws, examTitle: examTitle}
}

func (h *HistoryScreen) Init() tea.Cmd {
	h.ws.SetView(workspace.ViewSimulationHistory)
	return nil
}

func (h *HistoryScreen) Title() string {
	return "Session History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open / Resume"},
		{Key: "R", Description: "Review mistakes"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) sessions() []exam.Session {
	return h.ws.SessionsFor(h.examTitle)
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	sessions := h.sessions()

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(sessions)-1 {
			h.selected++
		}
	case "enter":
		if h.selected >= len(sessions) {
			return h, nil
		}
		return h.openSession(sessions[h.selected])
	case "r", "R":
		return h.startReview(sessions)
	}
	return h, nil
}

// openSession resumes an unfinished session or shows a finished result.
func (h *HistoryScreen) openSession(s exam.Session) (screen.Screen, tea.Cmd) {
	if s.Status == exam.StatusCompleted {
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(s)}
		}
	}

	eng := sim.New(s.ID, s.ExamTitle, s.Topic, s.Questions, s.UserAnswers)
	h.ws.ResumeSimulation(eng.Exit())
	return h, func() tea.Msg {
		return router.PushScreenMsg{Screen: runner.New(h.ws, eng)}
	}
}

// startReview builds a fresh session from every question missed across
// the listed sessions.
func (h *HistoryScreen) startReview(sessions []exam.Session) (screen.Screen, tea.Cmd) {
	questions, err := review.Build(sessions)
	if err != nil {
		h.notice = "No mistakes to review. Keep it up!"
		return h, nil
	}

	id := fmt.Sprintf("%d", time.Now().UnixNano())
	eng := sim.New(id, h.examTitle, "Error Review", questions, nil)
	h.ws.StartSimulation(eng.Exit())
	return h, func() tea.Msg {
		return router.PushScreenMsg{Screen: runner.New(h.ws, eng)}
	}
}

func (h *HistoryScreen) View(width, height int) string {
	sessions := h.sessions()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		PaddingLeft(2).
		Render(h.examTitle))
	b.WriteString("\n\n")

	if len(sessions) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			PaddingLeft(2).
			Render("No sessions recorded yet."))
		return b.String()
	}

	for i, s := range sessions {
		date := s.Date
		if t, err := time.Parse(time.RFC3339, s.Date); err == nil {
			date = t.Format("Jan 02 15:04")
		}

		status := lipgloss.NewStyle().Foreground(theme.Success).Render("done")
		if s.Status == exam.StatusInProgress {
			status = lipgloss.NewStyle().Foreground(theme.Accent).Render("in progress")
		}

		line := fmt.Sprintf("%-14s  %-24s  %2d/%-2d  %3d%%  %s",
			date, truncate(s.Topic, 24), s.Score, s.TotalQuestions, history.Accuracy(s), status)

		style := lipgloss.NewStyle().Foreground(theme.Text).PaddingLeft(4)
		if i == h.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).PaddingLeft(2)
			line = "▸ " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if h.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			PaddingLeft(2).
			Render(h.notice))
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
