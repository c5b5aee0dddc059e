package study

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/llm"
)

func testRecord() exam.Record {
	return exam.Record{
		Title:        "TRF 2026 - Analyst",
		Organization: "CESPE",
		SelectedRole: "Judicial Analyst",
	}
}

func textResponse(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func TestGenerateLesson(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("# Verbal Agreement\n\nLesson body."))
	svc := NewService(mock, DefaultConfig())

	content, err := svc.GenerateLesson(context.Background(), testRecord(), "Portuguese", "Verbal Agreement")
	if err != nil {
		t.Fatalf("GenerateLesson returned error: %v", err)
	}
	if content.Subject != "Portuguese" || content.Title != "Verbal Agreement" {
		t.Errorf("content meta = %+v", content)
	}
	if !strings.HasPrefix(content.Content, "# Verbal Agreement") {
		t.Errorf("Content = %q", content.Content)
	}

	req := mock.Calls[0]
	if !req.UseSearch {
		t.Error("lesson request should ask for search grounding")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Verbal Agreement", "CESPE", "Judicial Analyst", ":::ATTENTION:::"} {
		if !strings.Contains(msg, want) {
			t.Errorf("lesson prompt missing %q", want)
		}
	}
}

func TestGenerateLesson_EmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("   "))
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateLesson(context.Background(), testRecord(), "Portuguese", "Crase"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestExpand_SendsLessonTailOnly(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("---\n# Advanced Deep Dive & Extra Questions\n\nMore."))
	cfg := DefaultConfig()
	cfg.ExpandTailChars = 10
	svc := NewService(mock, cfg)

	lesson := strings.Repeat("a", 100) + "THE-ENDING"
	out, err := svc.Expand(context.Background(), lesson, "Crase")
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if !strings.Contains(out, "Advanced Deep Dive") {
		t.Errorf("out = %q", out)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "THE-ENDING") {
		t.Error("expand prompt should include the lesson's ending")
	}
	if strings.Contains(msg, "aaaaaaaaaaaaaaaaaaaaa") {
		t.Error("expand prompt should not include the whole lesson")
	}
}

func TestAskTutor(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("**Answer:** think of it like a queue."))
	cfg := DefaultConfig()
	cfg.TutorContextChars = 20
	svc := NewService(mock, cfg)

	lesson := "INTRO-PART" + strings.Repeat("b", 100)
	out, err := svc.AskTutor(context.Background(), lesson, "Why does the verb agree with the subject here?")
	if err != nil {
		t.Fatalf("AskTutor returned error: %v", err)
	}
	if out == "" {
		t.Fatal("empty tutor answer")
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "INTRO-PART") {
		t.Error("tutor prompt should include the lesson's opening")
	}
	if !strings.Contains(msg, "Why does the verb agree") {
		t.Error("tutor prompt should include the student's doubt")
	}
	if mock.Calls[0].UseSearch {
		t.Error("tutor answers should not use search grounding")
	}
}

func TestStepByStep(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("# Structural Logic: Crase\n\nSteps."))
	svc := NewService(mock, DefaultConfig())

	out, err := svc.StepByStep(context.Background(), "Crase", "base content")
	if err != nil {
		t.Fatalf("StepByStep returned error: %v", err)
	}
	if !strings.HasPrefix(out, "# Structural Logic") {
		t.Errorf("out = %q", out)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Crase", "Identification Checklist", "Application Manual"} {
		if !strings.Contains(msg, want) {
			t.Errorf("step prompt missing %q", want)
		}
	}
}
