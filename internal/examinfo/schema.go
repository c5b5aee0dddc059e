package examinfo

import "github.com/gfranca/mestre/internal/llm"

// subjectDefinition is shared between the analysis and role schemas.
var subjectDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Subject name as it appears in the syllabus",
		},
		"importance": map[string]any{
			"type":        "string",
			"enum":        []any{"High", "Medium", "Low"},
			"description": "How heavily the board weights this subject",
		},
		"topics": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Syllabus topics listed for this subject",
		},
		"questionCount": map[string]any{
			"type":        "string",
			"description": "Estimated question count, e.g. \"10 to 15 questions\"",
		},
	},
	"required": []any{"name", "importance", "topics"},
}

// AnalysisSchema defines the JSON structure for a full exam analysis.
var AnalysisSchema = &llm.Schema{
	Name:        "exam-analysis",
	Description: "Structured research summary of a public competitive exam",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Official exam name",
			},
			"organization": map[string]any{
				"type":        "string",
				"description": "Examining board running the contest",
			},
			"estimatedVacancies": map[string]any{
				"type":        "string",
				"description": "Number of openings, e.g. \"350\"",
			},
			"registrationPeriod": map[string]any{
				"type":        "string",
				"description": "Registration window, e.g. \"Jan 15 to Feb 20\"",
			},
			"fee": map[string]any{
				"type":        "string",
				"description": "Registration fee",
			},
			"examDate": map[string]any{
				"type":        "string",
				"description": "Scheduled or expected exam date",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Overview of the contest and the career it leads to",
			},
			"previousContestAnalysis": map[string]any{
				"type":        "string",
				"description": "How this edition differs from the last one and how the board phrases its questions",
			},
			"availableRoles": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Main roles candidates can apply for",
			},
			"subjects": map[string]any{
				"type":  "array",
				"items": subjectDefinition,
			},
			"strategies": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"phase": map[string]any{
							"type":        "string",
							"description": "Preparation phase this advice applies to",
						},
						"advice": map[string]any{
							"type":        "string",
							"description": "Practical advice for the phase",
						},
					},
					"required": []any{"phase", "advice"},
				},
			},
		},
		"required": []any{
			"title", "organization", "summary", "subjects", "strategies",
		},
	},
}

// RoleSubjectsSchema defines the JSON structure for a role-specific syllabus.
var RoleSubjectsSchema = &llm.Schema{
	Name:        "role-subjects",
	Description: "Subjects and topics required for one specific role",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subjects": map[string]any{
				"type":  "array",
				"items": subjectDefinition,
			},
		},
		"required": []any{"subjects"},
	},
}
