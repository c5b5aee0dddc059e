// Package study is the lesson screen: browse the syllabus topics of an
// exam, generate or reopen the lesson for one of them, and work the
// material with the tutor, the advanced appendix, and step-by-step
// breakdowns. Generated lessons are cached on the exam record.
package study

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/screen"
	studysvc "github.com/gfranca/mestre/internal/study"
	"github.com/gfranca/mestre/internal/ui/components"
	"github.com/gfranca/mestre/internal/ui/layout"
	"github.com/gfranca/mestre/internal/workspace"
)

type mode int

const (
	modeBrowse mode = iota
	modeLoading
	modeRead
	modeTutor
)

// topicEntry is one selectable row in the browser.
type topicEntry struct {
	Subject string
	Topic   string
}

// StudyScreen browses topics and displays lessons.
type StudyScreen struct {
	ws      *workspace.Workspace
	service *studysvc.Service
	record  exam.Record

	entries  []topicEntry
	selected int
	mode     mode
	loading  string
	errMsg   string

	content exam.StudyContent
	scroll  int

	tutorInput components.TextInput
	pending    string // key of the in-flight action, for the loading line
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.EscCapturer = (*StudyScreen)(nil)

// New creates a study screen for the given record.
func New(ws *workspace.Workspace, service *studysvc.Service, record exam.Record) *StudyScreen {
	var entries []topicEntry
	for _, subj := range record.Subjects {
		for _, t := range subj.Topics {
			entries = append(entries, topicEntry{Subject: subj.Name, Topic: t})
		}
	}
	return &StudyScreen{
		ws:      ws,
		service: service,
		record:  record,
		entries: entries,
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	// Reopen the lesson that was on screen when the app closed.
	if sc := s.ws.Context.StudyContent; sc != nil && s.ws.Context.CurrentView == workspace.ViewStudyContent {
		s.content = *sc
		s.mode = modeRead
		return nil
	}
	s.ws.SetView(workspace.ViewMyStudies)
	return nil
}

func (s *StudyScreen) Title() string {
	if s.mode == modeRead || s.mode == modeTutor {
		return s.content.Title
	}
	return "Study"
}

func (s *StudyScreen) CapturesEsc() bool {
	return s.mode == modeRead || s.mode == modeTutor
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeBrowse:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open lesson"},
			{Key: "C", Description: "Mark done"},
			{Key: "Esc", Description: "Back"},
		}
	case modeRead:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "M", Description: "More depth"},
			{Key: "S", Description: "Step by step"},
			{Key: "T", Description: "Ask the tutor"},
			{Key: "Esc", Description: "Topics"},
		}
	case modeTutor:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return nil
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		return s.handleLesson(msg)
	case expandReadyMsg:
		return s.handleAppend(msg.Text, msg.Err)
	case stepReadyMsg:
		return s.handleAppend(msg.Text, msg.Err)
	case tutorReadyMsg:
		return s.handleTutor(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeTutor {
		var cmd tea.Cmd
		s.tutorInput, cmd = s.tutorInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.mode {
	case modeBrowse:
		switch key {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "c", "C":
			return s.toggleCompleted()
		case "enter":
			return s.openTopic()
		}

	case modeLoading:
		// Wait it out. Esc falls through to the app and pops the screen.

	case modeRead:
		switch key {
		case "esc":
			s.mode = modeBrowse
			s.ws.SetStudyContent(nil)
			s.ws.SetView(workspace.ViewMyStudies)
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "pgup":
			s.scroll -= 10
			if s.scroll < 0 {
				s.scroll = 0
			}
		case "pgdown":
			s.scroll += 10
		case "m", "M":
			return s.requestExpand()
		case "s", "S":
			return s.requestStepByStep()
		case "t", "T":
			s.mode = modeTutor
			s.tutorInput = components.NewTextInput("Type your doubt...", false, 120)
			return s, s.tutorInput.Init()
		}

	case modeTutor:
		switch key {
		case "esc":
			s.mode = modeRead
			return s, nil
		case "enter":
			return s.askTutor()
		default:
			var cmd tea.Cmd
			s.tutorInput, cmd = s.tutorInput.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// openTopic shows the cached lesson or generates a fresh one.
func (s *StudyScreen) openTopic() (screen.Screen, tea.Cmd) {
	if s.selected >= len(s.entries) {
		return s, nil
	}
	entry := s.entries[s.selected]

	if cached, ok := s.record.CachedContent[entry.Topic]; ok {
		s.showLesson(exam.StudyContent{
			Subject: entry.Subject,
			Title:   entry.Topic,
			Content: cached,
		})
		return s, nil
	}

	s.mode = modeLoading
	s.loading = fmt.Sprintf("Preparing the %s lesson...", entry.Topic)
	rec := s.record
	return s, func() tea.Msg {
		content, err := s.service.GenerateLesson(context.Background(), rec, entry.Subject, entry.Topic)
		return lessonReadyMsg{Content: content, Err: err}
	}
}

func (s *StudyScreen) handleLesson(msg lessonReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.mode = modeBrowse
		s.errMsg = fmt.Sprintf("Lesson failed: %v", msg.Err)
		return s, nil
	}

	// Cache on the record so reopening is free.
	s.record.CacheContent(msg.Content.Title, msg.Content.Content)
	s.ws.UpdateRecord(s.record)

	s.errMsg = ""
	s.showLesson(msg.Content)
	return s, nil
}

func (s *StudyScreen) showLesson(content exam.StudyContent) {
	s.content = content
	s.scroll = 0
	s.mode = modeRead
	s.ws.SetStudyContent(&content)
	s.ws.SetView(workspace.ViewStudyContent)
}

// requestExpand appends the advanced appendix to the open lesson.
func (s *StudyScreen) requestExpand() (screen.Screen, tea.Cmd) {
	if s.pending != "" {
		return s, nil
	}
	s.pending = "Going deeper..."
	current, title := s.content.Content, s.content.Title
	return s, func() tea.Msg {
		text, err := s.service.Expand(context.Background(), current, title)
		return expandReadyMsg{Text: text, Err: err}
	}
}

// requestStepByStep appends the logic breakdown to the open lesson.
func (s *StudyScreen) requestStepByStep() (screen.Screen, tea.Cmd) {
	if s.pending != "" {
		return s, nil
	}
	s.pending = "Breaking the logic down..."
	current, title := s.content.Content, s.content.Title
	return s, func() tea.Msg {
		text, err := s.service.StepByStep(context.Background(), title, current)
		return stepReadyMsg{Text: text, Err: err}
	}
}

// handleAppend splices generated material onto the open lesson and
// refreshes the cache.
func (s *StudyScreen) handleAppend(text string, err error) (screen.Screen, tea.Cmd) {
	s.pending = ""
	if err != nil {
		s.errMsg = fmt.Sprintf("Request failed: %v", err)
		return s, nil
	}

	s.content.Content = s.content.Content + "\n\n" + text
	s.record.CacheContent(s.content.Title, s.content.Content)
	s.ws.UpdateRecord(s.record)
	s.ws.SetStudyContent(&s.content)
	s.errMsg = ""
	return s, nil
}

func (s *StudyScreen) askTutor() (screen.Screen, tea.Cmd) {
	question := strings.TrimSpace(s.tutorInput.Value())
	if question == "" {
		return s, nil
	}

	s.mode = modeRead
	s.pending = "Asking the tutor..."
	current := s.content.Content
	return s, func() tea.Msg {
		answer, err := s.service.AskTutor(context.Background(), current, question)
		return tutorReadyMsg{Question: question, Answer: answer, Err: err}
	}
}

func (s *StudyScreen) handleTutor(msg tutorReadyMsg) (screen.Screen, tea.Cmd) {
	s.pending = ""
	if msg.Err != nil {
		s.errMsg = fmt.Sprintf("Tutor failed: %v", msg.Err)
		return s, nil
	}

	section := fmt.Sprintf("## Tutor\n\n> **Your doubt:** %s\n\n%s", msg.Question, msg.Answer)
	return s.handleAppend(section, nil)
}

// toggleCompleted flips the done marker on the selected topic.
func (s *StudyScreen) toggleCompleted() (screen.Screen, tea.Cmd) {
	if s.selected >= len(s.entries) {
		return s, nil
	}
	s.record.ToggleTopic(s.entries[s.selected].Topic)
	s.ws.UpdateRecord(s.record)
	return s, nil
}
