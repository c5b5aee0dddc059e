package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "single-question",
		Description: "One multiple-choice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 5,
					"maxItems": 5,
				},
				"correctOptionIndex": map[string]any{"type": "integer", "minimum": 0, "maximum": 4},
				"importance":         map[string]any{"type": "string", "enum": []any{"High", "Medium", "Low"}},
			},
			"required": []any{"text", "options", "correctOptionIndex"},
		},
	}
}

const validQuestionJSON = `{
	"text": "Which organ exercises external control of the federal budget?",
	"options": ["TCU", "STF", "CGU", "Senate", "AGU"],
	"correctOptionIndex": 0,
	"importance": "High"
}`

func TestValidateResponse_Valid(t *testing.T) {
	if err := validateResponse(questionSchema(), json.RawMessage(validQuestionJSON)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{
		"text": "2 + 2?",
		"options": ["1", "2", "3", "4", "5"],
		"correctOptionIndex": 3
	}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"text": "incomplete question"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{
		"text": "q",
		"options": ["a", "b", "c", "d", "e"],
		"correctOptionIndex": "first"
	}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongOptionCount(t *testing.T) {
	raw := json.RawMessage(`{
		"text": "q",
		"options": ["a", "b", "c"],
		"correctOptionIndex": 0
	}`)
	if err := validateResponse(questionSchema(), raw); err == nil {
		t.Fatal("expected error for wrong option count")
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{
		"text": "q",
		"options": ["a", "b", "c", "d", "e"],
		"correctOptionIndex": 0,
		"importance": "Critical"
	}`)
	if err := validateResponse(questionSchema(), raw); err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(questionSchema(), json.RawMessage(`{not json}`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(questionSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "subject-list",
		Description: "Subjects with topics",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"topics": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"subject", "topics"},
		},
	}

	valid := json.RawMessage(`{"subject":{"name":"Administrative Law"},"topics":["Public agents","Bidding"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"subject":{"name":"Administrative Law"},"topics":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
