package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/gfranca/mestre/internal/exam"
)

// memPersister stores the two slices as serialized JSON, mimicking the
// real store's round-trip without a database.
type memPersister struct {
	records    []byte
	ctxData    []byte
	hasCtx     bool
	recordsErr error
	ctxErr     error

	recordSaves int
	ctxSaves    int
}

func (m *memPersister) SaveRecords(_ context.Context, records []exam.Record) error {
	m.recordSaves++
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	m.records = b
	return nil
}

func (m *memPersister) LoadRecords(_ context.Context) ([]exam.Record, error) {
	if m.recordsErr != nil {
		return nil, m.recordsErr
	}
	if m.records == nil {
		return nil, nil
	}
	var out []exam.Record
	return out, json.Unmarshal(m.records, &out)
}

func (m *memPersister) SaveContext(_ context.Context, wc Context) error {
	m.ctxSaves++
	b, err := json.Marshal(wc)
	if err != nil {
		return err
	}
	m.ctxData = b
	m.hasCtx = true
	return nil
}

func (m *memPersister) LoadContext(_ context.Context) (Context, bool, error) {
	if m.ctxErr != nil {
		return Context{}, false, m.ctxErr
	}
	if !m.hasCtx {
		return Context{}, false, nil
	}
	var wc Context
	return wc, true, json.Unmarshal(m.ctxData, &wc)
}

func testSession(id, title string) exam.Session {
	return exam.Session{
		ID:             id,
		ExamTitle:      title,
		Date:           "2026-01-02T15:04:05Z",
		Topic:          exam.GeneralTopic,
		TotalQuestions: 2,
		Questions: []exam.Question{
			{ID: "q1", Text: "one", Options: []string{"A", "B", "C", "D", "E"}},
			{ID: "q2", Text: "two", Options: []string{"A", "B", "C", "D", "E"}},
		},
		Status: exam.StatusInProgress,
	}
}

func TestRecordSession_UpsertsByID(t *testing.T) {
	w := New(&memPersister{})
	w.SaveExam(exam.Record{Title: "IBGE"})

	s := testSession("1", "IBGE")
	w.RecordSession(s)

	s.Score = 2
	s.Status = exam.StatusCompleted
	w.RecordSession(s)

	hist := w.SessionsFor("IBGE")
	if len(hist) != 1 {
		t.Fatalf("history len = %d, want 1", len(hist))
	}
	if hist[0].Score != 2 || hist[0].Status != exam.StatusCompleted {
		t.Errorf("second upsert did not win: %+v", hist[0])
	}
}

func TestRecordSession_CreatesPlaceholder(t *testing.T) {
	w := New(&memPersister{})

	w.RecordSession(testSession("1", "IBGE 2021"))

	rec := w.FindRecord("IBGE 2021")
	if rec == nil {
		t.Fatal("no placeholder record created")
	}
	if len(rec.SimulationHistory) != 1 {
		t.Errorf("history len = %d, want 1", len(rec.SimulationHistory))
	}
}

func TestRecordSession_MirrorsActiveState(t *testing.T) {
	w := New(&memPersister{})
	w.SaveExam(exam.Record{Title: "IBGE"})
	w.SetActiveExam(exam.Record{Title: "IBGE"}, nil)

	s := testSession("1", "IBGE")
	w.StartSimulation(s)

	s.UserAnswers = []exam.UserAnswer{{QuestionID: "q1", SelectedOptionIndex: 0, IsCorrect: true}}
	s.Score = 1
	w.RecordSession(s)

	if len(w.Context.ActiveSimAnswers) != 1 {
		t.Errorf("active answers = %d, want 1", len(w.Context.ActiveSimAnswers))
	}
	if got := w.Context.ActiveExam.SimulationHistory; len(got) != 1 || got[0].Score != 1 {
		t.Errorf("active exam snapshot not mirrored: %+v", got)
	}
}

func TestFinishSimulation_ClearsActiveState(t *testing.T) {
	w := New(&memPersister{})
	s := testSession("1", "IBGE")
	w.StartSimulation(s)

	s.Status = exam.StatusCompleted
	w.FinishSimulation(s)

	if w.Context.ActiveSimID != "" || w.Context.ActiveSimQuestions != nil {
		t.Error("active simulation state not cleared")
	}
	if w.Context.CurrentView != ViewSimulationHistory {
		t.Errorf("view = %s, want SIMULATION_HISTORY", w.Context.CurrentView)
	}
}

func TestLoad_RoundTripIdentity(t *testing.T) {
	p := &memPersister{}
	w := New(p)
	rec := exam.Record{
		Title:           "IBGE",
		Organization:    "FGV",
		Subjects:        []exam.Subject{{Name: "Portuguese", Importance: "High", Topics: []string{"Syntax"}}},
		CompletedTopics: []string{"Syntax"},
		CachedContent:   map[string]string{"Syntax": "# Lesson"},
		UserNotes:       map[string]string{"Syntax": "revisit"},
	}
	w.SaveExam(rec)
	w.RecordSession(testSession("1", "IBGE"))
	w.SetActiveExam(*w.FindRecord("IBGE"), []exam.Source{{Title: "Edital", URI: "https://example.com"}})
	w.ResumeSimulation(w.SessionsFor("IBGE")[0])

	restored := Load(context.Background(), p)

	if !reflect.DeepEqual(restored.Records, w.Records) {
		t.Errorf("records round trip mismatch:\n got %+v\nwant %+v", restored.Records, w.Records)
	}
	if !reflect.DeepEqual(restored.Context, w.Context) {
		t.Errorf("context round trip mismatch:\n got %+v\nwant %+v", restored.Context, w.Context)
	}
}

func TestLoad_SlicesRestoredIndependently(t *testing.T) {
	p := &memPersister{}
	w := New(p)
	w.SaveExam(exam.Record{Title: "IBGE"})
	w.SetView(ViewGuide)

	// A corrupt records slice must not block restoring the context.
	p.recordsErr = errors.New("corrupt payload")
	restored := Load(context.Background(), p)

	if len(restored.Records) != 0 {
		t.Errorf("records = %d, want empty fallback", len(restored.Records))
	}
	if restored.Context.CurrentView != ViewGuide {
		t.Errorf("view = %s, want GUIDE from intact context slice", restored.Context.CurrentView)
	}
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	p := &memPersister{recordsErr: errors.New("gone"), ctxErr: errors.New("gone")}

	w := Load(context.Background(), p)

	if len(w.Records) != 0 {
		t.Error("expected empty records fallback")
	}
	if w.Context.CurrentView != ViewHome {
		t.Errorf("view = %s, want HOME default", w.Context.CurrentView)
	}
	if w.Context.SimConfig.QuestionCount != 5 {
		t.Errorf("default sim config not applied: %+v", w.Context.SimConfig)
	}
}

func TestEveryMutationPersists(t *testing.T) {
	p := &memPersister{}
	w := New(p)

	w.SetSearchTerm("PRF")
	w.SetView(ViewPastExams)
	w.SetSimConfig(exam.SimConfig{QuestionCount: 10, Topic: "Law"})
	w.SetStudyContent(&exam.StudyContent{Subject: "Law", Title: "Torts", Content: "# Torts"})
	w.SetPastExamSearch("IBGE 2021", nil)

	if p.ctxSaves != 5 {
		t.Errorf("context saves = %d, want 5 (one per mutation)", p.ctxSaves)
	}

	w.SaveExam(exam.Record{Title: "PRF"})
	w.RemoveExam("PRF")
	if p.recordSaves != 2 {
		t.Errorf("record saves = %d, want 2", p.recordSaves)
	}
}
