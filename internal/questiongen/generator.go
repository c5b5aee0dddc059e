// Package questiongen produces exam questions through the LLM provider:
// mock-exam sets in three modes and reconstruction of historical exam
// papers from web sources.
package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/llm"
)

// Config controls the behavior of the Service.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls randomness for question generation.
	Temperature float64

	// PastExamTemperature controls randomness for past-exam retrieval.
	// Kept low: archival extraction should not improvise.
	PastExamTemperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           8192,
		Temperature:         0.7,
		PastExamTemperature: 0.1,
	}
}

// Service generates questions using an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a question generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces a question set for the given input. Questions that
// come back structurally broken are dropped; missing IDs are filled in.
// Returns an error when nothing usable survives.
func (s *Service) Generate(ctx context.Context, input GenerateInput) ([]exam.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var out struct {
		Questions []exam.Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}

	questions := sanitize(out.Questions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no valid questions in response")
	}

	return questions, nil
}

// FindPastExam searches for a historical exam paper and reconstructs it.
func (s *Service) FindPastExam(ctx context.Context, searchQuery string) (*exam.PastExam, error) {
	ctx = llm.WithPurpose(ctx, "past-exam")

	req := llm.Request{
		System: pastExamSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPastExamPrompt(searchQuery)},
		},
		Schema:      PastExamSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.PastExamTemperature,
		UseSearch:   true,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("past exam search failed: %w", err)
	}

	var out struct {
		Meta struct {
			Title string `json:"title"`
			Year  string `json:"year"`
			Org   string `json:"org"`
		} `json:"meta"`
		Questions []exam.Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse past exam: %w", err)
	}

	questions := sanitize(out.Questions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found for %q", searchQuery)
	}

	past := &exam.PastExam{
		Title:     out.Meta.Title,
		Year:      out.Meta.Year,
		Org:       out.Meta.Org,
		Questions: questions,
	}
	if past.Title == "" {
		past.Title = searchQuery
	}
	if past.Year == "" {
		past.Year = "Unknown year"
	}
	if past.Org == "" {
		past.Org = "Unknown board"
	}

	return past, nil
}

// sanitize drops structurally broken questions and fills in missing IDs.
func sanitize(raw []exam.Question) []exam.Question {
	var out []exam.Question
	for _, q := range raw {
		if !q.Valid() {
			continue
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		out = append(out, q)
	}
	return out
}
