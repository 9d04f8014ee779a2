// Package ai drafts course copy with Gemini.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks coursehub/internal/ai Generator

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("ai generation is not configured")

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Generator writes course descriptions.
type Generator interface {
	CourseDescription(ctx context.Context, courseName string, keywords []string) (string, error)
}

var (
	_ Generator = (*GeminiGenerator)(nil)
	_ Generator = DisabledGenerator{}
)

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a client for the Gemini developer API.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// CourseDescription asks the model for a short marketing description.
func (g *GeminiGenerator) CourseDescription(ctx context.Context, courseName string, keywords []string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(DescriptionPrompt(courseName, keywords)), nil)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// DescriptionPrompt builds the instruction sent to the model.
func DescriptionPrompt(courseName string, keywords []string) string {
	var b strings.Builder
	b.WriteString("Write an engaging description for an online course, between 80 and 150 words, ")
	b.WriteString("in plain text without headings or bullet points.\n")
	fmt.Fprintf(&b, "Course title: %s\n", strings.TrimSpace(courseName))

	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) > 0 {
		fmt.Fprintf(&b, "Cover these topics: %s\n", strings.Join(cleaned, ", "))
	}
	return b.String()
}

// DisabledGenerator fails every request with ErrDisabled.
type DisabledGenerator struct{}

// CourseDescription always fails.
func (DisabledGenerator) CourseDescription(context.Context, string, []string) (string, error) {
	return "", ErrDisabled
}
