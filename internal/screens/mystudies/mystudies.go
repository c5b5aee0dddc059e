// Package mystudies lists the saved exam collection and reopens any of
// them in the guide.
package mystudies

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/examinfo"
	"github.com/gfranca/mestre/internal/history"
	"github.com/gfranca/mestre/internal/questiongen"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screen"
	"github.com/gfranca/mestre/internal/screens/guide"
	studysvc "github.com/gfranca/mestre/internal/study"
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/ui/theme"
	"github.com/gfranca/mestre/internal/workspace"
)

// MyStudiesScreen shows the saved exams.
type MyStudiesScreen struct {
	ws           *workspace.Workspace
	exams        *examinfo.Service
	questions    *questiongen.Service
	studyService *studysvc.Service

	selected  int
	confirmRm bool
}

var _ screen.Screen = (*MyStudiesScreen)(nil)
var _ screen.KeyHintProvider = (*MyStudiesScreen)(nil)
var _ screen.EscCapturer = (*MyStudiesScreen)(nil)

// New creates the saved-exams screen.
func New(ws *workspace.Workspace, exams *examinfo.Service, questions *questiongen.Service, studyService *studysvc.Service) *MyStudiesScreen {
	return &MyStudiesScreen{
		ws:           ws,
		exams:        exams,
		questions:    questions,
		studyService: studyService,
	}
}

func (m *MyStudiesScreen) Init() tea.Cmd {
	m.ws.SetView(workspace.ViewMyStudies)
	return nil
}

func (m *MyStudiesScreen) Title() string { return "My Studies" }

func (m *MyStudiesScreen) CapturesEsc() bool { return m.confirmRm }

func (m *MyStudiesScreen) KeyHints() []layout.KeyHint {
	if m.confirmRm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Remove"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "D", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MyStudiesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmRm {
		switch key.String() {
		case "y", "Y":
			if m.selected < len(m.ws.Records) {
				m.ws.RemoveExam(m.ws.Records[m.selected].Title)
			}
			if m.selected >= len(m.ws.Records) && m.selected > 0 {
				m.selected--
			}
			m.confirmRm = false
		case "n", "N", "esc":
			m.confirmRm = false
		}
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.ws.Records)-1 {
			m.selected++
		}
	case "d", "D":
		if len(m.ws.Records) > 0 {
			m.confirmRm = true
		}
	case "enter":
		if m.selected < len(m.ws.Records) {
			rec := m.ws.Records[m.selected]
			m.ws.SetActiveExam(rec, nil)
			return m, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: guide.NewForRecord(m.ws, m.exams, m.questions, m.studyService, rec),
				}
			}
		}
	}
	return m, nil
}

func (m *MyStudiesScreen) View(width, height int) string {
	if len(m.ws.Records) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("No saved exams yet.\nResearch one from the home screen and save it here."))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d saved exam(s)", len(m.ws.Records))))
	b.WriteString("\n\n")

	for i, rec := range m.ws.Records {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.selected {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(prefix + style.Render(rec.Title) + "\n")

		detail := rec.Organization
		if rec.SelectedRole != "" {
			detail += "  ·  " + rec.SelectedRole
		}
		if sessions := m.ws.SessionsFor(rec.Title); len(sessions) > 0 {
			detail += fmt.Sprintf("  ·  %d session(s), %d%% accuracy",
				len(sessions), history.OverallAccuracy(sessions))
		}
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(6).
			Foreground(theme.TextDim).
			Render(detail))
		b.WriteString("\n\n")
	}

	if m.confirmRm && m.selected < len(m.ws.Records) {
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("Remove %q and its history? [Y/N]", m.ws.Records[m.selected].Title)))
	}

	return b.String()
}
