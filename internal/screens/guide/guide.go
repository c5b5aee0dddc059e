// Package guide is the exam research screen: the user names an exam, the
// AI researches it on the web, and the result becomes an actionable card
// with the syllabus, the strategy advice, and entry points into studying,
// simulations, and the session history.
package guide

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/examinfo"
	"github.com/gfranca/mestre/internal/questiongen"
	"github.com/gfranca/mestre/internal/router"
	"github.com/gfranca/mestre/internal/screen"
	"github.com/gfranca/mestre/internal/screens/history"
	"github.com/gfranca/mestre/internal/screens/setup"
	"github.com/gfranca/mestre/internal/screens/study"
	studysvc "github.com/gfranca/mestre/internal/study"
	"github.com/gfranca/mestre/internal/ui/components"
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/workspace"
)

type mode int

const (
	modeSearch mode = iota
	modeLoading
	modeDisplay
	modeRoles
)

type action struct {
	Label string
	Run   func(*GuideScreen) (screen.Screen, tea.Cmd)
}

// GuideScreen researches exams and presents the result.
type GuideScreen struct {
	ws           *workspace.Workspace
	exams        *examinfo.Service
	questions    *questiongen.Service
	studyService *studysvc.Service

	mode    mode
	input   components.TextInput
	loading string
	errMsg  string

	record  exam.Record
	sources []exam.Source

	actionIdx int
	roleIdx   int
	scroll    int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)
var _ screen.EscCapturer = (*GuideScreen)(nil)

// New creates a guide screen starting at the search prompt.
func New(ws *workspace.Workspace, exams *examinfo.Service, questions *questiongen.Service, studyService *studysvc.Service) *GuideScreen {
	return &GuideScreen{
		ws:           ws,
		exams:        exams,
		questions:    questions,
		studyService: studyService,
		input:        components.NewTextInput("e.g. Federal Revenue Auditor 2026", false, 120),
	}
}

// NewForRecord creates a guide screen already showing a saved record.
func NewForRecord(ws *workspace.Workspace, exams *examinfo.Service, questions *questiongen.Service, studyService *studysvc.Service, record exam.Record) *GuideScreen {
	g := New(ws, exams, questions, studyService)
	g.record = record
	g.sources = ws.Context.ActiveExamSources
	g.mode = modeDisplay
	return g
}

func (g *GuideScreen) Init() tea.Cmd {
	g.ws.SetView(workspace.ViewGuide)
	if g.mode == modeDisplay {
		g.ws.SetActiveExam(g.record, g.sources)
		return nil
	}
	return g.input.Init()
}

func (g *GuideScreen) Title() string {
	if g.mode == modeDisplay || g.mode == modeRoles {
		return g.record.Title
	}
	return "Exam Research"
}

func (g *GuideScreen) CapturesEsc() bool {
	return g.mode == modeRoles
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	switch g.mode {
	case modeSearch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Research"},
			{Key: "Esc", Description: "Back"},
		}
	case modeDisplay:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Actions"},
			{Key: "PgUp/PgDn", Description: "Scroll"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case modeRoles:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Roles"},
			{Key: "Enter", Description: "Load syllabus"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return nil
	}
}

// actions builds the menu for the record on display. The save entry
// flips between save and remove depending on the collection.
func (g *GuideScreen) actions() []action {
	var acts []action

	if g.ws.IsSaved(g.record.Title) {
		acts = append(acts, action{Label: "Remove from my studies", Run: (*GuideScreen).removeExam})
	} else {
		acts = append(acts, action{Label: "Save to my studies", Run: (*GuideScreen).saveExam})
	}

	if len(g.record.AvailableRoles) > 0 {
		label := "Choose a role"
		if g.record.SelectedRole != "" {
			label = fmt.Sprintf("Change role (%s)", g.record.SelectedRole)
		}
		acts = append(acts, action{Label: label, Run: (*GuideScreen).openRoles})
	}

	if len(g.record.Subjects) > 0 {
		acts = append(acts,
			action{Label: "Study the topics", Run: (*GuideScreen).openStudy},
			action{Label: "Start a simulation", Run: (*GuideScreen).openSetup},
		)
	}

	acts = append(acts,
		action{Label: "Simulation history", Run: (*GuideScreen).openHistory},
		action{Label: "Research another exam", Run: (*GuideScreen).newSearch},
	)
	return acts
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisReadyMsg:
		return g.handleAnalysis(msg)
	case roleSubjectsMsg:
		return g.handleRoleSubjects(msg)
	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	if g.mode == modeSearch {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GuideScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch g.mode {
	case modeSearch:
		if key == "enter" {
			return g.startResearch()
		}
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd

	case modeLoading:
		// Research in flight. Esc falls through to the app and pops.

	case modeDisplay:
		acts := g.actions()
		switch key {
		case "up", "k":
			if g.actionIdx > 0 {
				g.actionIdx--
			}
		case "down", "j":
			if g.actionIdx < len(acts)-1 {
				g.actionIdx++
			}
		case "pgup":
			g.scroll -= 8
			if g.scroll < 0 {
				g.scroll = 0
			}
		case "pgdown":
			g.scroll += 8
		case "enter":
			if g.actionIdx < len(acts) {
				return acts[g.actionIdx].Run(g)
			}
		}

	case modeRoles:
		switch key {
		case "esc":
			g.mode = modeDisplay
		case "up", "k":
			if g.roleIdx > 0 {
				g.roleIdx--
			}
		case "down", "j":
			if g.roleIdx < len(g.record.AvailableRoles)-1 {
				g.roleIdx++
			}
		case "enter":
			return g.selectRole()
		}
	}
	return g, nil
}

func (g *GuideScreen) startResearch() (screen.Screen, tea.Cmd) {
	term := strings.TrimSpace(g.input.Value())
	if term == "" {
		return g, nil
	}

	g.ws.SetSearchTerm(term)
	g.mode = modeLoading
	g.loading = fmt.Sprintf("Researching %q on the web...", term)
	g.errMsg = ""
	return g, func() tea.Msg {
		analysis, err := g.exams.Analyze(context.Background(), term)
		return analysisReadyMsg{Analysis: analysis, Err: err}
	}
}

func (g *GuideScreen) handleAnalysis(msg analysisReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		g.mode = modeSearch
		g.errMsg = fmt.Sprintf("Research failed: %v", msg.Err)
		return g, g.input.Init()
	}

	// A saved exam with the same title keeps its accumulated progress.
	if saved := g.ws.FindRecord(msg.Analysis.Record.Title); saved != nil {
		g.record = *saved
	} else {
		g.record = msg.Analysis.Record
	}
	g.sources = msg.Analysis.Sources
	g.mode = modeDisplay
	g.actionIdx = 0
	g.scroll = 0
	g.ws.SetActiveExam(g.record, g.sources)
	return g, nil
}

func (g *GuideScreen) saveExam() (screen.Screen, tea.Cmd) {
	g.ws.SaveExam(g.record)
	return g, nil
}

func (g *GuideScreen) removeExam() (screen.Screen, tea.Cmd) {
	g.ws.RemoveExam(g.record.Title)
	if g.actionIdx > 0 {
		g.actionIdx = 0
	}
	return g, nil
}

func (g *GuideScreen) openRoles() (screen.Screen, tea.Cmd) {
	g.mode = modeRoles
	g.roleIdx = 0
	for i, r := range g.record.AvailableRoles {
		if r == g.record.SelectedRole {
			g.roleIdx = i
		}
	}
	return g, nil
}

func (g *GuideScreen) selectRole() (screen.Screen, tea.Cmd) {
	if g.roleIdx >= len(g.record.AvailableRoles) {
		return g, nil
	}
	role := g.record.AvailableRoles[g.roleIdx]

	g.mode = modeLoading
	g.loading = fmt.Sprintf("Loading the syllabus for %s...", role)
	title, org := g.record.Title, g.record.Organization
	return g, func() tea.Msg {
		subjects, err := g.exams.SubjectsForRole(context.Background(), title, org, role)
		return roleSubjectsMsg{Role: role, Subjects: subjects, Err: err}
	}
}

func (g *GuideScreen) handleRoleSubjects(msg roleSubjectsMsg) (screen.Screen, tea.Cmd) {
	g.mode = modeDisplay
	if msg.Err != nil {
		g.errMsg = fmt.Sprintf("Syllabus lookup failed: %v", msg.Err)
		return g, nil
	}

	g.record.SelectedRole = msg.Role
	g.record.Subjects = msg.Subjects
	g.errMsg = ""
	if g.ws.IsSaved(g.record.Title) {
		g.ws.UpdateRecord(g.record)
	}
	g.ws.SetActiveExam(g.record, g.sources)
	return g, nil
}

func (g *GuideScreen) openStudy() (screen.Screen, tea.Cmd) {
	return g, func() tea.Msg {
		return router.PushScreenMsg{Screen: study.New(g.ws, g.studyService, g.record)}
	}
}

func (g *GuideScreen) openSetup() (screen.Screen, tea.Cmd) {
	g.ws.SetView(workspace.ViewSimulationSetup)
	return g, func() tea.Msg {
		return router.PushScreenMsg{Screen: setup.New(g.ws, g.questions, g.record)}
	}
}

func (g *GuideScreen) openHistory() (screen.Screen, tea.Cmd) {
	return g, func() tea.Msg {
		return router.PushScreenMsg{Screen: history.New(g.ws, g.record.Title)}
	}
}

func (g *GuideScreen) newSearch() (screen.Screen, tea.Cmd) {
	g.mode = modeSearch
	g.record = exam.Record{}
	g.sources = nil
	g.errMsg = ""
	g.input = components.NewTextInput("e.g. Federal Revenue Auditor 2026", false, 120)
	g.ws.SetSearchTerm("")
	return g, g.input.Init()
}
