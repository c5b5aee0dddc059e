// Package study generates lesson material through the LLM provider:
// full topic lessons, advanced appendices, tutor answers to specific
// doubts, and step-by-step logic breakdowns.
package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/llm"
)

// Config controls the behavior of the Service.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// LessonTemperature controls randomness for full lessons.
	// Kept low: precision matters more than variety here.
	LessonTemperature float64

	// ExpandTemperature controls randomness for advanced appendices.
	ExpandTemperature float64

	// TutorTemperature controls randomness for tutor answers.
	TutorTemperature float64

	// StepTemperature controls randomness for step-by-step breakdowns.
	StepTemperature float64

	// TutorContextChars caps how much of the lesson goes into a tutor
	// prompt.
	TutorContextChars int

	// ExpandTailChars caps how much of the lesson's ending goes into an
	// expand prompt, so the model knows where the material stopped.
	ExpandTailChars int

	// StepContextChars caps the lesson excerpt for step-by-step prompts.
	StepContextChars int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         8192,
		LessonTemperature: 0.25,
		ExpandTemperature: 0.3,
		TutorTemperature:  0.7,
		StepTemperature:   0.4,
		TutorContextChars: 3000,
		ExpandTailChars:   2000,
		StepContextChars:  2000,
	}
}

// Service generates study material using an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a study material service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateLesson produces the full lesson for one syllabus topic,
// researched against the record's board when the provider supports search.
func (s *Service) GenerateLesson(ctx context.Context, rec exam.Record, subjectName, topicName string) (exam.StudyContent, error) {
	ctx = llm.WithPurpose(ctx, "study-content")

	text, err := s.generateText(ctx, llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonPrompt(rec, subjectName, topicName)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.LessonTemperature,
		UseSearch:   true,
	})
	if err != nil {
		return exam.StudyContent{}, fmt.Errorf("lesson generation failed: %w", err)
	}

	return exam.StudyContent{
		Subject: subjectName,
		Title:   topicName,
		Content: text,
	}, nil
}

// Expand produces an advanced appendix for an existing lesson. The caller
// appends the result to the current content.
func (s *Service) Expand(ctx context.Context, currentContent string, topicName string) (string, error) {
	ctx = llm.WithPurpose(ctx, "study-expand")

	text, err := s.generateText(ctx, llm.Request{
		System: expandSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExpandPrompt(currentContent, topicName, s.cfg.ExpandTailChars)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.ExpandTemperature,
		UseSearch:   true,
	})
	if err != nil {
		return "", fmt.Errorf("lesson expansion failed: %w", err)
	}
	return text, nil
}

// AskTutor answers one specific doubt about the lesson being read.
func (s *Service) AskTutor(ctx context.Context, currentContent, userQuestion string) (string, error) {
	ctx = llm.WithPurpose(ctx, "tutor")

	text, err := s.generateText(ctx, llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTutorPrompt(currentContent, userQuestion, s.cfg.TutorContextChars)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.TutorTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("tutor request failed: %w", err)
	}
	return text, nil
}

// StepByStep produces a logic breakdown of the topic, structured as an
// identification checklist and an application manual.
func (s *Service) StepByStep(ctx context.Context, topicName, currentContent string) (string, error) {
	ctx = llm.WithPurpose(ctx, "step-by-step")

	text, err := s.generateText(ctx, llm.Request{
		System: stepSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStepByStepPrompt(topicName, currentContent, s.cfg.StepContextChars)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.StepTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("step-by-step request failed: %w", err)
	}
	return text, nil
}

// generateText runs a schemaless request and returns the plain text output.
func (s *Service) generateText(ctx context.Context, req llm.Request) (string, error) {
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}
