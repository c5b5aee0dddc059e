package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/llm"
)

func questionJSON(id string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"text": "Which article of the constitution lists fundamental rights?",
		"options": ["Art. 1", "Art. 5", "Art. 37", "Art. 60", "Art. 102"],
		"correctOptionIndex": 1,
		"explanation": "Art. 5 lists fundamental rights. Art. 37 covers public administration.",
		"topic": "Constitutional Law"
	}`, id)
}

func questionsResponse(ids ...string) json.RawMessage {
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = questionJSON(id)
	}
	return json.RawMessage(`{"questions": [` + strings.Join(items, ",") + `]}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionsResponse("q1", "q2")})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.Generate(context.Background(), GenerateInput{
		ExamContext: "TRF 2026 - Analyst",
		Count:       2,
		Topic:       "Constitutional Law",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	for _, q := range questions {
		if !q.Valid() {
			t.Errorf("question %s is invalid: %+v", q.ID, q)
		}
	}
}

func TestGenerate_PromptModes(t *testing.T) {
	subjects := []exam.Subject{
		{Name: "Portuguese", Importance: "High"},
		{Name: "IT", Importance: "Low"},
	}

	tests := []struct {
		name        string
		input       GenerateInput
		wantMarker  string
		skipMarkers []string
	}{
		{
			name: "study context mode wins over topic",
			input: GenerateInput{
				ExamContext:  "TRF 2026",
				Count:        3,
				Topic:        exam.GeneralTopic,
				StudyContext: "Art. 5 guarantees...",
				Subjects:     subjects,
			},
			wantMarker:  "STUDY TEXT",
			skipMarkers: []string{"FULL MOCK EXAM"},
		},
		{
			name: "general topic with subjects is a full mock",
			input: GenerateInput{
				ExamContext:  "TRF 2026",
				Count:        10,
				Topic:        exam.GeneralTopic,
				Subjects:     subjects,
				Organization: "CESPE",
			},
			wantMarker: "FULL MOCK EXAM",
		},
		{
			name: "specific topic uses the simple mode",
			input: GenerateInput{
				ExamContext: "TRF 2026",
				Count:       5,
				Topic:       "Administrative Law",
				Subjects:    subjects,
			},
			wantMarker:  "Content focus: Administrative Law",
			skipMarkers: []string{"FULL MOCK EXAM", "STUDY TEXT"},
		},
		{
			name: "general topic without subjects falls back to simple mode",
			input: GenerateInput{
				ExamContext: "TRF 2026",
				Count:       5,
				Topic:       exam.GeneralTopic,
			},
			wantMarker: "Content focus: General",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: questionsResponse("q1")})
			svc := NewService(mock, DefaultConfig())

			if _, err := svc.Generate(context.Background(), tt.input); err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}

			msg := mock.Calls[0].Messages[0].Content
			if !strings.Contains(msg, tt.wantMarker) {
				t.Errorf("prompt missing %q:\n%s", tt.wantMarker, msg)
			}
			for _, marker := range tt.skipMarkers {
				if strings.Contains(msg, marker) {
					t.Errorf("prompt should not contain %q", marker)
				}
			}
		})
	}
}

func TestGenerate_FullMockListsSubjectWeights(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionsResponse("q1")})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), GenerateInput{
		ExamContext: "TRF 2026",
		Count:       10,
		Topic:       exam.GeneralTopic,
		Subjects: []exam.Subject{
			{Name: "Portuguese", Importance: "High"},
			{Name: "IT", Importance: "Low"},
		},
		Organization: "CESPE",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Portuguese (weight: High)", "IT (weight: Low)", "CESPE"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerate_StudyContextTruncated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionsResponse("q1")})
	svc := NewService(mock, DefaultConfig())

	long := strings.Repeat("x", maxStudyContext+100)
	_, err := svc.Generate(context.Background(), GenerateInput{
		ExamContext:  "TRF 2026",
		Count:        3,
		StudyContext: long,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "(truncated)") {
		t.Error("oversized study context should be marked truncated")
	}
	if len(msg) > maxStudyContext+2000 {
		t.Errorf("prompt length %d, study context was not truncated", len(msg))
	}
}

func TestGenerate_DropsBrokenAndFillsIDs(t *testing.T) {
	content := json.RawMessage(`{"questions": [
		{"id": "", "text": "ok", "options": ["a","b","c","d","e"], "correctOptionIndex": 0, "explanation": "x", "topic": "t"},
		{"id": "bad", "text": "four options", "options": ["a","b","c","d"], "correctOptionIndex": 0, "explanation": "x", "topic": "t"},
		{"id": "bad2", "text": "index out of range", "options": ["a","b","c","d","e"], "correctOptionIndex": 7, "explanation": "x", "topic": "t"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.Generate(context.Background(), GenerateInput{ExamContext: "TRF", Count: 3, Topic: "t"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1 survivor", len(questions))
	}
	if questions[0].ID == "" {
		t.Error("missing ID should be filled in")
	}
}

func TestGenerate_AllBroken(t *testing.T) {
	content := json.RawMessage(`{"questions": [
		{"id": "bad", "text": "x", "options": ["a","b"], "correctOptionIndex": 0, "explanation": "x", "topic": "t"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), GenerateInput{ExamContext: "TRF", Count: 1, Topic: "t"}); err == nil {
		t.Fatal("expected error when every question is broken")
	}
}

func TestFindPastExam(t *testing.T) {
	content := json.RawMessage(`{
		"meta": {"title": "TRF 2018 - Analyst", "year": "2018", "org": "CESPE"},
		"questions": [` + questionJSON("q1") + `]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(mock, DefaultConfig())

	past, err := svc.FindPastExam(context.Background(), "TRF analyst 2018")
	if err != nil {
		t.Fatalf("FindPastExam returned error: %v", err)
	}
	if past.Title != "TRF 2018 - Analyst" || past.Year != "2018" || past.Org != "CESPE" {
		t.Errorf("meta = %+v", past)
	}
	if len(past.Questions) != 1 {
		t.Errorf("got %d questions, want 1", len(past.Questions))
	}
	if !mock.Calls[0].UseSearch {
		t.Error("past exam search should ask for search grounding")
	}
}

func TestFindPastExam_MetaDefaults(t *testing.T) {
	content := json.RawMessage(`{
		"meta": {"title": "", "year": "", "org": ""},
		"questions": [` + questionJSON("q1") + `]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(mock, DefaultConfig())

	past, err := svc.FindPastExam(context.Background(), "TRF analyst 2018")
	if err != nil {
		t.Fatalf("FindPastExam returned error: %v", err)
	}
	if past.Title != "TRF analyst 2018" {
		t.Errorf("Title = %q, want search query fallback", past.Title)
	}
	if past.Year != "Unknown year" || past.Org != "Unknown board" {
		t.Errorf("missing meta defaults: %+v", past)
	}
}

func TestFindPastExam_NoQuestions(t *testing.T) {
	content := json.RawMessage(`{"meta": {"title": "t", "year": "y", "org": "o"}, "questions": []}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.FindPastExam(context.Background(), "TRF 2018"); err == nil {
		t.Fatal("expected error when no questions were found")
	}
}
