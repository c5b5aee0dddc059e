// Package examinfo researches exams through the LLM provider: a full
// analysis of a named exam and role-specific syllabus lookups, both
// grounded in web search when the provider supports it.
package examinfo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/llm"
)

// Config controls the behavior of the Service.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// AnalyzeTemperature controls randomness for full exam analysis.
	AnalyzeTemperature float64

	// RoleTemperature controls randomness for role syllabus lookups.
	// Lower than AnalyzeTemperature: syllabus extraction should not
	// improvise.
	RoleTemperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          8192,
		AnalyzeTemperature: 0.2,
		RoleTemperature:    0.1,
	}
}

// Analysis is the result of researching one exam.
type Analysis struct {
	// Record holds the researched exam data with an empty session history.
	Record exam.Record

	// Sources lists the web pages the analysis was grounded in.
	Sources []exam.Source
}

// Service researches exams using an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an exam research service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Analyze researches the named exam and returns a populated Record plus
// the web sources the answer was grounded in.
func (s *Service) Analyze(ctx context.Context, examName string) (*Analysis, error) {
	ctx = llm.WithPurpose(ctx, "exam-analysis")

	req := llm.Request{
		System: analyzeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalyzePrompt(examName)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.AnalyzeTemperature,
		UseSearch:   true,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exam analysis failed: %w", err)
	}

	var record exam.Record
	if err := json.Unmarshal(resp.Content, &record); err != nil {
		return nil, fmt.Errorf("failed to parse exam analysis: %w", err)
	}
	if record.Title == "" {
		record.Title = examName
	}

	analysis := &Analysis{Record: record}
	for _, src := range resp.Sources {
		title := src.Title
		if title == "" {
			title = "Web source"
		}
		analysis.Sources = append(analysis.Sources, exam.Source{
			Title: title,
			URI:   src.URI,
		})
	}

	return analysis, nil
}

// SubjectsForRole looks up the role-specific syllabus for an already
// analyzed exam. The returned subjects replace the record's general ones.
func (s *Service) SubjectsForRole(ctx context.Context, examTitle, organization, role string) ([]exam.Subject, error) {
	ctx = llm.WithPurpose(ctx, "role-subjects")

	req := llm.Request{
		System: roleSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRolePrompt(examTitle, organization, role)},
		},
		Schema:      RoleSubjectsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.RoleTemperature,
		UseSearch:   true,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("role syllabus lookup failed: %w", err)
	}

	var out struct {
		Subjects []exam.Subject `json:"subjects"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse role syllabus: %w", err)
	}
	if len(out.Subjects) == 0 {
		return nil, fmt.Errorf("no subjects found for role %q", role)
	}

	return out.Subjects, nil
}
