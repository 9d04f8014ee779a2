package service

import (
	"context"
	"strings"

	"coursehub/internal/ai"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"
)

// AIService drafts course copy for instructors.
type AIService struct {
	generator ai.Generator
}

// NewAIService creates a new AIService.
func NewAIService(generator ai.Generator) *AIService {
	return &AIService{generator: generator}
}

// GenerateDescription asks the model for a course description.
func (s *AIService) GenerateDescription(ctx context.Context, req *models.GenerateDescriptionRequest) (*models.GenerateDescriptionResponse, error) {
	text, err := s.generator.CourseDescription(ctx, req.CourseName, req.Keywords)
	if err != nil {
		return nil, apperrors.Upstream("generate description", err)
	}
	return &models.GenerateDescriptionResponse{Description: strings.TrimSpace(text)}, nil
}
