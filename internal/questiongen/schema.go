package questiongen

import "github.com/gfranca/mestre/internal/llm"

// questionDefinition describes a single generated question.
var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Unique identifier for the question",
		},
		"text": map[string]any{
			"type":        "string",
			"description": "The question stem",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 5 options (A, B, C, D, E)",
		},
		"correctOptionIndex": map[string]any{
			"type":        "integer",
			"description": "0-based index of the correct option",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Detailed comment explaining why the answer is correct and the others are wrong",
		},
		"topic": map[string]any{
			"type":        "string",
			"description": "The specific topic this question covers",
		},
	},
	"required": []any{"id", "text", "options", "correctOptionIndex", "explanation", "topic"},
}

// QuestionsSchema defines the JSON structure for a generated question set.
var QuestionsSchema = &llm.Schema{
	Name:        "mock-exam",
	Description: "A set of multiple-choice exam questions with commented answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
		},
		"required": []any{"questions"},
	},
}

// PastExamSchema defines the JSON structure for a reconstructed past exam.
var PastExamSchema = &llm.Schema{
	Name:        "past-exam",
	Description: "A historical exam reconstructed from web sources",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"meta": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Official title of the exam paper",
					},
					"year": map[string]any{
						"type":        "string",
						"description": "Year the exam was held",
					},
					"org": map[string]any{
						"type":        "string",
						"description": "Examining board that ran it",
					},
				},
				"required": []any{"title", "year", "org"},
			},
			"questions": map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
		},
		"required": []any{"meta", "questions"},
	},
}
