// Package workspace holds the process-wide application state: the saved
// exam collection (the durable "database") and the active UI context.
// Every mutation goes through a Workspace method, which persists the
// touched slice before returning. The two slices are written
// independently, so losing one never blocks restoring the other.
package workspace

import (
	"context"
	"fmt"
	"os"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/history"
)

// View identifies the screen the user was last on.
type View string

const (
	ViewHome              View = "HOME"
	ViewGuide             View = "GUIDE"
	ViewMyStudies         View = "MY_STUDIES"
	ViewSimulationSetup   View = "SIMULATION_SETUP"
	ViewSimulationActive  View = "SIMULATION_ACTIVE"
	ViewSimulationHistory View = "SIMULATION_HISTORY"
	ViewStudyContent      View = "STUDY_CONTENT"
	ViewPastExams         View = "PAST_EXAMS"
)

// Context is the active UI/session state, mirrored to storage on every
// relevant change so the app resumes exactly where it left off.
type Context struct {
	CurrentView        View               `json:"currentView"`
	SearchTerm         string             `json:"searchTerm"`
	ActiveExam         *exam.Record       `json:"activeExamSnapshot,omitempty"`
	ActiveExamSources  []exam.Source      `json:"activeExamSources,omitempty"`
	ActiveSimID        string             `json:"activeSessionId,omitempty"`
	ActiveSimQuestions []exam.Question    `json:"activeSessionQuestions,omitempty"`
	ActiveSimAnswers   []exam.UserAnswer  `json:"activeSessionAnswers,omitempty"`
	ActiveSimTitle     string             `json:"activeSessionTitle,omitempty"`
	SimConfig          exam.SimConfig     `json:"simulationSetupConfig"`
	StudyContent       *exam.StudyContent `json:"activeStudyContent,omitempty"`
	PastExamSearch     string             `json:"pastExamSearchTerm,omitempty"`
	FoundPastExam      *exam.PastExam     `json:"foundPastExam,omitempty"`
}

// DefaultContext is the state of a fresh workspace.
func DefaultContext() Context {
	return Context{
		CurrentView: ViewHome,
		SimConfig:   exam.SimConfig{QuestionCount: 5, Topic: exam.GeneralTopic},
	}
}

// Persister stores and restores the two workspace slices.
type Persister interface {
	SaveRecords(ctx context.Context, records []exam.Record) error
	LoadRecords(ctx context.Context) ([]exam.Record, error)
	SaveContext(ctx context.Context, wc Context) error
	LoadContext(ctx context.Context) (Context, bool, error)
}

// Workspace is the single mutable state object of the application.
type Workspace struct {
	Records []exam.Record
	Context Context

	persister Persister
}

// Load restores a workspace from storage. Restoration is best-effort:
// a missing or unreadable slice falls back to its empty default and is
// logged, never surfaced as an error.
func Load(ctx context.Context, p Persister) *Workspace {
	w := &Workspace{Context: DefaultContext(), persister: p}
	if p == nil {
		return w
	}

	records, err := p.LoadRecords(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not restore saved exams, starting empty: %v\n", err)
	} else {
		w.Records = records
	}

	wc, ok, err := p.LoadContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not restore previous session state: %v\n", err)
	} else if ok {
		w.Context = wc
	}
	return w
}

// New creates an empty workspace backed by p. Used by tests and by
// flows that bypass restoration.
func New(p Persister) *Workspace {
	return &Workspace{Context: DefaultContext(), persister: p}
}

func (w *Workspace) saveRecords() {
	if w.persister == nil {
		return
	}
	if err := w.persister.SaveRecords(context.Background(), w.Records); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist saved exams: %v\n", err)
	}
}

func (w *Workspace) saveContext() {
	if w.persister == nil {
		return
	}
	if err := w.persister.SaveContext(context.Background(), w.Context); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist session state: %v\n", err)
	}
}

// FindRecord returns the saved record with the given title, or nil.
func (w *Workspace) FindRecord(title string) *exam.Record {
	for i := range w.Records {
		if w.Records[i].Title == title {
			return &w.Records[i]
		}
	}
	return nil
}

// IsSaved reports whether an exam with the given title is saved.
func (w *Workspace) IsSaved(title string) bool {
	return w.FindRecord(title) != nil
}

// SaveExam adds a record to the saved collection. A record with the same
// title replaces the existing entry.
func (w *Workspace) SaveExam(rec exam.Record) {
	if existing := w.FindRecord(rec.Title); existing != nil {
		*existing = rec
	} else {
		w.Records = append(w.Records, rec)
	}
	w.saveRecords()
}

// RemoveExam deletes the saved record with the given title.
func (w *Workspace) RemoveExam(title string) {
	for i := range w.Records {
		if w.Records[i].Title == title {
			w.Records = append(w.Records[:i], w.Records[i+1:]...)
			w.saveRecords()
			return
		}
	}
}

// UpdateRecord replaces a saved record and, when it is also the active
// exam, refreshes the active snapshot so both views stay consistent.
func (w *Workspace) UpdateRecord(rec exam.Record) {
	if existing := w.FindRecord(rec.Title); existing != nil {
		*existing = rec
		w.saveRecords()
	}
	if w.Context.ActiveExam != nil && w.Context.ActiveExam.Title == rec.Title {
		snapshot := rec
		w.Context.ActiveExam = &snapshot
		w.saveContext()
	}
}

// RecordSession merges a session snapshot into its exam's history. When
// no record exists for the session's exam title (a past exam resolved
// from the archive, never analyzed), a placeholder record is created so
// the history has an owner. The active session answers are mirrored into
// the context slice so a restart resumes mid-session.
func (w *Workspace) RecordSession(s exam.Session) {
	rec := w.FindRecord(s.ExamTitle)
	if rec == nil {
		w.Records = append(w.Records, placeholderRecord(s.ExamTitle))
		rec = &w.Records[len(w.Records)-1]
	}
	rec.SimulationHistory = history.Upsert(rec.SimulationHistory, s)
	w.saveRecords()

	if w.Context.ActiveExam != nil && w.Context.ActiveExam.Title == s.ExamTitle {
		w.Context.ActiveExam.SimulationHistory = history.Upsert(w.Context.ActiveExam.SimulationHistory, s)
	}
	if w.Context.ActiveSimID == s.ID {
		w.Context.ActiveSimAnswers = s.UserAnswers
	}
	w.saveContext()
}

func placeholderRecord(title string) exam.Record {
	return exam.Record{
		Title:   title,
		Summary: "Imported exam history.",
	}
}

// SessionsFor returns the recorded history for one exam title.
func (w *Workspace) SessionsFor(title string) []exam.Session {
	if rec := w.FindRecord(title); rec != nil {
		return rec.SimulationHistory
	}
	return nil
}

// AllSessions returns every session across all saved exams, in record
// then recorded order.
func (w *Workspace) AllSessions() []exam.Session {
	var out []exam.Session
	for _, rec := range w.Records {
		out = append(out, rec.SimulationHistory...)
	}
	return out
}

// SetView records the current screen.
func (w *Workspace) SetView(v View) {
	w.Context.CurrentView = v
	w.saveContext()
}

// SetSearchTerm records the home-screen search input.
func (w *Workspace) SetSearchTerm(term string) {
	w.Context.SearchTerm = term
	w.saveContext()
}

// SetActiveExam makes a record the active exam and stores its grounding
// sources.
func (w *Workspace) SetActiveExam(rec exam.Record, sources []exam.Source) {
	snapshot := rec
	w.Context.ActiveExam = &snapshot
	w.Context.ActiveExamSources = sources
	w.saveContext()
}

// SetSimConfig records the simulation setup choices.
func (w *Workspace) SetSimConfig(cfg exam.SimConfig) {
	w.Context.SimConfig = cfg
	w.saveContext()
}

// StartSimulation activates a session: the questions and identity go into
// the context slice, the initial snapshot goes into the history.
func (w *Workspace) StartSimulation(s exam.Session) {
	w.Context.ActiveSimID = s.ID
	w.Context.ActiveSimTitle = s.ExamTitle
	w.Context.ActiveSimQuestions = s.Questions
	w.Context.ActiveSimAnswers = s.UserAnswers
	w.Context.CurrentView = ViewSimulationActive
	w.RecordSession(s)
}

// ResumeSimulation re-activates a stored session.
func (w *Workspace) ResumeSimulation(s exam.Session) {
	w.Context.ActiveSimID = s.ID
	w.Context.ActiveSimTitle = s.ExamTitle
	w.Context.ActiveSimQuestions = s.Questions
	w.Context.ActiveSimAnswers = s.UserAnswers
	w.Context.CurrentView = ViewSimulationActive
	w.saveContext()
}

// FinishSimulation records the final snapshot and clears the active
// session state.
func (w *Workspace) FinishSimulation(s exam.Session) {
	w.RecordSession(s)
	w.Context.ActiveSimID = ""
	w.Context.ActiveSimTitle = ""
	w.Context.ActiveSimQuestions = nil
	w.Context.ActiveSimAnswers = nil
	w.Context.CurrentView = ViewSimulationHistory
	w.saveContext()
}

// SetStudyContent records the lesson being read.
func (w *Workspace) SetStudyContent(sc *exam.StudyContent) {
	w.Context.StudyContent = sc
	w.saveContext()
}

// SetPastExamSearch records the archive search input and result.
func (w *Workspace) SetPastExamSearch(term string, found *exam.PastExam) {
	w.Context.PastExamSearch = term
	w.Context.FoundPastExam = found
	w.saveContext()
}
