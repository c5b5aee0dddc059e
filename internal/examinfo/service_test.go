package examinfo

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gfranca/mestre/internal/llm"
)

func validAnalysisJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "IBGE 2025 Census Agent",
		"organization": "FGV",
		"estimatedVacancies": "8000",
		"registrationPeriod": "Jan 15 to Feb 20",
		"fee": "R$ 60,00",
		"examDate": "May 12, 2025",
		"summary": "Nationwide census support contest.",
		"previousContestAnalysis": "FGV favors long interpretation stems.",
		"availableRoles": ["Census Agent", "Supervisor"],
		"subjects": [
			{
				"name": "Portuguese",
				"importance": "High",
				"topics": ["Reading comprehension", "Agreement"],
				"questionCount": "10 to 15 questions"
			}
		],
		"strategies": [
			{"phase": "Base building", "advice": "Start with the high-weight subjects."}
		]
	}`)
}

func TestAnalyze(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	svc := NewService(mock, DefaultConfig())

	analysis, err := svc.Analyze(context.Background(), "IBGE 2025")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	rec := analysis.Record
	if rec.Title != "IBGE 2025 Census Agent" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Organization != "FGV" {
		t.Errorf("Organization = %q", rec.Organization)
	}
	if len(rec.Subjects) != 1 || rec.Subjects[0].Name != "Portuguese" {
		t.Errorf("Subjects = %+v", rec.Subjects)
	}
	if len(rec.AvailableRoles) != 2 {
		t.Errorf("AvailableRoles = %v", rec.AvailableRoles)
	}
	if len(rec.SimulationHistory) != 0 {
		t.Errorf("new record should have no session history")
	}
}

func TestAnalyze_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Analyze(context.Background(), "IBGE 2025"); err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	req := mock.Calls[0]
	if !req.UseSearch {
		t.Error("analysis request should ask for search grounding")
	}
	if req.Schema != AnalysisSchema {
		t.Error("analysis request should carry AnalysisSchema")
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "IBGE 2025") {
		t.Errorf("user message missing exam name: %+v", req.Messages)
	}
}

func TestAnalyze_PropagatesSources(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validAnalysisJSON(),
		Sources: []llm.WebSource{
			{Title: "Official notice", URI: "https://example.org/edital.pdf"},
			{Title: "", URI: "https://example.org/faq"},
		},
	})
	svc := NewService(mock, DefaultConfig())

	analysis, err := svc.Analyze(context.Background(), "IBGE 2025")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(analysis.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(analysis.Sources))
	}
	if analysis.Sources[0].Title != "Official notice" {
		t.Errorf("Sources[0].Title = %q", analysis.Sources[0].Title)
	}
}

func TestAnalyze_TitleFallsBackToQuery(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "", "organization": "FGV", "summary": "x", "subjects": [], "strategies": []}`),
	})
	svc := NewService(mock, DefaultConfig())

	analysis, err := svc.Analyze(context.Background(), "TRF 2026")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if analysis.Record.Title != "TRF 2026" {
		t.Errorf("Title = %q, want query fallback", analysis.Record.Title)
	}
}

func TestAnalyze_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Analyze(context.Background(), "IBGE 2025"); err == nil {
		t.Fatal("expected error from empty mock queue")
	}
}

func TestSubjectsForRole(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"subjects": [
				{"name": "Administrative Law", "importance": "High", "topics": ["Public agents", "Bidding"]},
				{"name": "IT", "importance": "Low", "topics": ["Spreadsheets"]}
			]
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	subjects, err := svc.SubjectsForRole(context.Background(), "TRF 2026", "CESPE", "Analyst")
	if err != nil {
		t.Fatalf("SubjectsForRole returned error: %v", err)
	}
	if len(subjects) != 2 {
		t.Fatalf("got %d subjects, want 2", len(subjects))
	}
	if subjects[0].Name != "Administrative Law" || subjects[0].Importance != "High" {
		t.Errorf("subjects[0] = %+v", subjects[0])
	}

	req := mock.Calls[0]
	if !req.UseSearch {
		t.Error("role lookup should ask for search grounding")
	}
	for _, want := range []string{"Analyst", "TRF 2026", "CESPE"} {
		if !strings.Contains(req.Messages[0].Content, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestSubjectsForRole_EmptyResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"subjects": []}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.SubjectsForRole(context.Background(), "TRF 2026", "CESPE", "Analyst"); err == nil {
		t.Fatal("expected error for empty subject list")
	}
}
