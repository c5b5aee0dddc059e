package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/workspace"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWorkspaceRecordsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.WorkspaceRepo()
	ctx := context.Background()

	records := []exam.Record{
		{
			Title:        "IBGE",
			Organization: "FGV",
			Subjects:     []exam.Subject{{Name: "Portuguese", Importance: "High", Topics: []string{"Syntax"}}},
			SimulationHistory: []exam.Session{
				{
					ID:             "1",
					ExamTitle:      "IBGE",
					Date:           "2026-01-02T15:04:05Z",
					Topic:          exam.GeneralTopic,
					Score:          1,
					TotalQuestions: 1,
					Questions: []exam.Question{
						{ID: "q1", Text: "t", Options: []string{"A", "B", "C", "D", "E"}, Explanation: "e", Topic: "Syntax"},
					},
					UserAnswers: []exam.UserAnswer{{QuestionID: "q1", SelectedOptionIndex: 0, IsCorrect: true}},
					Status:      exam.StatusCompleted,
				},
			},
		},
		{Title: "PRF", Organization: "Cebraspe"},
	}

	if err := repo.SaveRecords(ctx, records); err != nil {
		t.Fatalf("SaveRecords: %v", err)
	}

	got, err := repo.LoadRecords(ctx)
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, records)
	}
}

func TestSaveRecordsIsFullOverwrite(t *testing.T) {
	s := openTestStore(t)
	repo := s.WorkspaceRepo()
	ctx := context.Background()

	if err := repo.SaveRecords(ctx, []exam.Record{{Title: "A"}, {Title: "B"}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.SaveRecords(ctx, []exam.Record{{Title: "B"}}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.LoadRecords(ctx)
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if len(got) != 1 || got[0].Title != "B" {
		t.Errorf("records = %+v, want only B (snapshot overwrite)", got)
	}
}

func TestWorkspaceContextRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.WorkspaceRepo()
	ctx := context.Background()

	// No context yet.
	_, ok, err := repo.LoadContext(ctx)
	if err != nil {
		t.Fatalf("LoadContext: %v", err)
	}
	if ok {
		t.Fatal("expected no stored context in a fresh database")
	}

	wc := workspace.Context{
		CurrentView:    workspace.ViewSimulationActive,
		SearchTerm:     "PRF",
		ActiveSimID:    "1700000000",
		ActiveSimTitle: "PRF",
		ActiveSimQuestions: []exam.Question{
			{ID: "q1", Text: "t", Options: []string{"A", "B", "C", "D", "E"}},
		},
		ActiveSimAnswers: []exam.UserAnswer{{QuestionID: "q1", SelectedOptionIndex: 2}},
		SimConfig:        exam.SimConfig{QuestionCount: 10, Topic: "Law"},
	}
	if err := repo.SaveContext(ctx, wc); err != nil {
		t.Fatalf("SaveContext: %v", err)
	}

	got, ok, err := repo.LoadContext(ctx)
	if err != nil {
		t.Fatalf("LoadContext: %v", err)
	}
	if !ok {
		t.Fatal("expected stored context")
	}
	if !reflect.DeepEqual(got, wc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, wc)
	}

	// Second save must update the singleton row, not add another.
	wc.SearchTerm = "IBGE"
	if err := repo.SaveContext(ctx, wc); err != nil {
		t.Fatalf("second SaveContext: %v", err)
	}
	got, _, err = repo.LoadContext(ctx)
	if err != nil {
		t.Fatalf("LoadContext: %v", err)
	}
	if got.SearchTerm != "IBGE" {
		t.Errorf("SearchTerm = %q, want updated value", got.SearchTerm)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "exam-analysis", InputTokens: 100, OutputTokens: 500, LatencyMs: 1200, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen"})
	if err != nil {
		t.Fatalf("QueryLLMEvents filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ErrorMessage != "rate limited" {
		t.Errorf("filtered = %+v, want the failed question-gen event", filtered)
	}

	one, err := repo.GetLLMEvent(ctx, got[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if one == nil || one.ID != got[0].ID {
		t.Errorf("GetLLMEvent = %+v, want event %d", one, got[0].ID)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("GetLLMEvent missing: %v", err)
	}
	if missing != nil {
		t.Errorf("GetLLMEvent(99999) = %+v, want nil", missing)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 300, OutputTokens: 600, LatencyMs: 3000, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "study-content", InputTokens: 50, OutputTokens: 250, LatencyMs: 500, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	for _, st := range byPurpose {
		if st.Purpose == "question-gen" {
			if st.Calls != 2 || st.InputTokens != 400 || st.OutputTokens != 1000 {
				t.Errorf("question-gen usage = %+v, want 2 calls, 400 in, 1000 out", st)
			}
			if st.AvgLatencyMs != 2000 {
				t.Errorf("AvgLatencyMs = %d, want 2000", st.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
}
