// Package setup configures a new simulation: how many questions, which
// topic (or the whole syllabus, or the lesson being read), then hands the
// generated set to the runner.
package setup

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
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/ui/theme"
	"github.com/gfranca/mestre/internal/workspace"
)

// countPresets are the selectable question counts.
var countPresets = []int{5, 10, 20, 30, 60}

// lessonTopic marks the "generate from the open lesson" topic entry.
const lessonTopic = "\x00lesson"

// questionsReadyMsg is sent when question generation finishes.
type questionsReadyMsg struct {
	Questions []exam.Question
	Err       error
}

// SetupScreen collects simulation options for one exam record.
type SetupScreen struct {
	ws        *workspace.Workspace
	questions *questiongen.Service
	record    exam.Record

	topics     []string
	topicIdx   int
	countIdx   int
	generating bool
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen for the given record.
func New(ws *workspace.Workspace, questions *questiongen.Service, record exam.Record) *SetupScreen {
	topics := []string{exam.GeneralTopic}
	if ws.Context.StudyContent != nil {
		topics = append(topics, lessonTopic)
	}
	for _, subj := range record.Subjects {
		topics = append(topics, subj.Topics...)
	}

	s := &SetupScreen{
		ws:        ws,
		questions: questions,
		record:    record,
		topics:    topics,
		countIdx:  1, // 10 questions
	}

	// Restore the last setup choices when they still apply.
	cfg := ws.Context.SimConfig
	for i, c := range countPresets {
		if c == cfg.QuestionCount {
			s.countIdx = i
		}
	}
	for i, t := range topics {
		if t == cfg.Topic {
			s.topicIdx = i
		}
	}

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	s.ws.SetView(workspace.ViewSimulationSetup)
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Simulation"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "←→", Description: "Questions"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestions(msg)

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.topicIdx > 0 {
				s.topicIdx--
			}
		case "down", "j":
			if s.topicIdx < len(s.topics)-1 {
				s.topicIdx++
			}
		case "left", "h":
			if s.countIdx > 0 {
				s.countIdx--
			}
		case "right", "l":
			if s.countIdx < len(countPresets)-1 {
				s.countIdx++
			}
		case "enter":
			return s.start()
		}
	}
	return s, nil
}

// start persists the chosen config and kicks off generation.
func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	topic := s.topics[s.topicIdx]
	count := countPresets[s.countIdx]

	input := questiongen.GenerateInput{
		ExamContext:  s.examContext(),
		Count:        count,
		Topic:        topic,
		Subjects:     s.record.Subjects,
		Organization: s.record.Organization,
	}

	cfgTopic := topic
	if topic == lessonTopic {
		sc := s.ws.Context.StudyContent
		if sc == nil {
			return s, nil
		}
		input.StudyContext = sc.Content
		input.Topic = sc.Title
		cfgTopic = sc.Title
	}

	s.ws.SetSimConfig(exam.SimConfig{
		QuestionCount:  count,
		Topic:          cfgTopic,
		ContextContent: input.StudyContext,
	})

	s.generating = true
	s.errMsg = ""
	return s, func() tea.Msg {
		qs, err := s.questions.Generate(context.Background(), input)
		return questionsReadyMsg{Questions: qs, Err: err}
	}
}

func (s *SetupScreen) handleQuestions(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	s.generating = false
	if msg.Err != nil {
		s.errMsg = fmt.Sprintf("Generation failed: %v", msg.Err)
		return s, nil
	}

	topic := s.ws.Context.SimConfig.Topic
	id := fmt.Sprintf("%d", time.Now().UnixNano())
	eng := sim.New(id, s.record.Title, topic, msg.Questions, nil)
	s.ws.StartSimulation(eng.Exit())

	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: runner.New(s.ws, eng)}
	}
}

// examContext names the exam for the prompt, role included when chosen.
func (s *SetupScreen) examContext() string {
	if s.record.SelectedRole != "" {
		return fmt.Sprintf("%s - %s", s.record.Title, s.record.SelectedRole)
	}
	return s.record.Title
}

func (s *SetupScreen) View(width, height int) string {
	if s.generating {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Writing your questions in the board's style...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		PaddingLeft(2).
		Render(s.record.Title))
	b.WriteString("\n\n")

	// Question count selector.
	var counts []string
	for i, c := range countPresets {
		label := fmt.Sprintf(" %d ", c)
		if i == s.countIdx {
			counts = append(counts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(label))
		} else {
			counts = append(counts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label))
		}
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Render("Questions:  ") + strings.Join(counts, " ")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		PaddingLeft(2).
		Render("Topic:"))
	b.WriteString("\n")

	b.WriteString(s.renderTopics(height - 8))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			PaddingLeft(2).
			Render(s.errMsg))
	}

	return b.String()
}

// renderTopics shows a window of the topic list around the cursor.
func (s *SetupScreen) renderTopics(rows int) string {
	if rows < 3 {
		rows = 3
	}
	start := 0
	if s.topicIdx >= rows {
		start = s.topicIdx - rows + 1
	}
	end := start + rows
	if end > len(s.topics) {
		end = len(s.topics)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		label := s.topics[i]
		switch label {
		case exam.GeneralTopic:
			label = "Full mock exam (all subjects)"
		case lessonTopic:
			label = fmt.Sprintf("From the open lesson: %s", s.ws.Context.StudyContent.Title)
		}

		if i == s.topicIdx {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				PaddingLeft(2).
				Render("▸ " + label))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				PaddingLeft(4).
				Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
