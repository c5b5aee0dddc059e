// Package pastexams locates a real historical exam on the web and turns
// its reconstructed questions into a simulation.
package pastexams

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/questiongen"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screen"
	runner "github.com/gfranca/mestre/internal/screens/simulation"
	sim "github.com/gfranca/mestre/internal/simulation"
	"github.com/gfranca/mestre/internal/ui/components"
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/ui/theme"
	"github.com/gfranca/mestre/internal/workspace"
)

type mode int

const (
	modeSearch mode = iota
	modeLoading
	modeFound
)

// foundMsg is sent when the past-exam lookup finishes.
type foundMsg struct {
	Exam *exam.PastExam
	Err  error
}

// PastExamsScreen finds historical exams and runs them.
type PastExamsScreen struct {
	ws        *workspace.Workspace
	questions *questiongen.Service

	mode   mode
	input  components.TextInput
	found  *exam.PastExam
	errMsg string
}

var _ screen.Screen = (*PastExamsScreen)(nil)
var _ screen.KeyHintProvider = (*PastExamsScreen)(nil)

// New creates the past-exam search screen.
func New(ws *workspace.Workspace, questions *questiongen.Service) *PastExamsScreen {
	p := &PastExamsScreen{
		ws:        ws,
		questions: questions,
		input:     components.NewTextInput("e.g. Bank clerk exam 2023", false, 120),
	}

	// Reopen a previously found exam.
	if ws.Context.FoundPastExam != nil {
		p.found = ws.Context.FoundPastExam
		p.mode = modeFound
	}
	return p
}

func (p *PastExamsScreen) Init() tea.Cmd {
	p.ws.SetView(workspace.ViewPastExams)
	if p.mode == modeSearch {
		return p.input.Init()
	}
	return nil
}

func (p *PastExamsScreen) Title() string { return "Past Exams" }

func (p *PastExamsScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeFound:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "N", Description: "New search"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (p *PastExamsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case foundMsg:
		if msg.Err != nil {
			p.mode = modeSearch
			p.errMsg = fmt.Sprintf("Search failed: %v", msg.Err)
			return p, p.input.Init()
		}
		p.found = msg.Exam
		p.mode = modeFound
		p.errMsg = ""
		p.ws.SetPastExamSearch(p.ws.Context.PastExamSearch, msg.Exam)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.mode == modeSearch {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PastExamsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch p.mode {
	case modeSearch:
		if msg.String() == "enter" {
			return p.search()
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd

	case modeFound:
		switch msg.String() {
		case "enter":
			return p.start()
		case "n", "N":
			p.mode = modeSearch
			p.found = nil
			p.ws.SetPastExamSearch("", nil)
			p.input = components.NewTextInput("e.g. Bank clerk exam 2023", false, 120)
			return p, p.input.Init()
		}
	}
	return p, nil
}

func (p *PastExamsScreen) search() (screen.Screen, tea.Cmd) {
	term := strings.TrimSpace(p.input.Value())
	if term == "" {
		return p, nil
	}

	p.ws.SetPastExamSearch(term, nil)
	p.mode = modeLoading
	p.errMsg = ""
	return p, func() tea.Msg {
		found, err := p.questions.FindPastExam(context.Background(), term)
		return foundMsg{Exam: found, Err: err}
	}
}

// start runs the found exam as a regular simulation. The session is
// keyed by the past exam's own title, so its history shows up separately
// from researched exams.
func (p *PastExamsScreen) start() (screen.Screen, tea.Cmd) {
	if p.found == nil || len(p.found.Questions) == 0 {
		return p, nil
	}

	topic := fmt.Sprintf("Past exam · %s · %s", p.found.Org, p.found.Year)
	id := fmt.Sprintf("%d", time.Now().UnixNano())
	eng := sim.New(id, p.found.Title, topic, p.found.Questions, nil)
	p.ws.StartSimulation(eng.Exit())

	return p, func() tea.Msg {
		return router.PushScreenMsg{Screen: runner.New(p.ws, eng)}
	}
}

func (p *PastExamsScreen) View(width, height int) string {
	switch p.mode {
	case modeLoading:
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Render("Searching for the real exam paper..."))
	case modeFound:
		return p.viewFound(width, height)
	default:
		return p.viewSearch(width, height)
	}
}

func (p *PastExamsScreen) viewSearch(width, height int) string {
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Which past exam do you want to practice with?") + "\n\n" +
		p.input.View() + "\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Name the exam, the year, or the examining board.")

	if p.errMsg != "" {
		prompt += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)
}

func (p *PastExamsScreen) viewFound(width, height int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	card := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(p.found.Title) + "\n\n" +
		label.Render("Board:      ") + value.Render(p.found.Org) + "\n" +
		label.Render("Year:       ") + value.Render(p.found.Year) + "\n" +
		label.Render("Questions:  ") + value.Render(fmt.Sprintf("%d", len(p.found.Questions))) + "\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("Press Enter to start")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 3).
			Render(card))
}
