package service

import (
	"context"
	"strings"

	"intellinote-be/internal/apperrors"
)

// defaultImprovePrompt is the fixed instruction used when the caller does
// not supply one: correct the note and return only the corrected content.
const defaultImprovePrompt = `What you receive is a note, just update the grammar, spelling mistakes and make it better in everyway. Do not provide suggestions, just update the note and provide only the content:`

// TextGenerator produces a completion for a single prompt.
// Implemented by the Gemini client.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AIService defines the interface for AI note improvement
type AIService interface {
	Improve(ctx context.Context, content string, customPrompt *string) (string, error)
}

type aiService struct {
	generator TextGenerator
}

// NewAIService creates a new AI service
func NewAIService(generator TextGenerator) AIService {
	return &aiService{generator: generator}
}

// Improve rewrites note content through the text-generation provider.
// The result is transient; persisting it is the caller's decision.
func (s *aiService) Improve(ctx context.Context, content string, customPrompt *string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", apperrors.ErrEmptyContent
	}

	return s.generator.GenerateContent(ctx, buildImprovePrompt(content, customPrompt))
}

// buildImprovePrompt joins the instruction and the note content with a
// blank line, matching the shape the model is tuned to follow
func buildImprovePrompt(content string, customPrompt *string) string {
	instruction := defaultImprovePrompt
	if customPrompt != nil && strings.TrimSpace(*customPrompt) != "" {
		instruction = *customPrompt
	}
	return instruction + "\n\n" + content
}
