package service

import (
	"context"
	"strings"

	"coursehub/internal/models"
)

// CategoryService manages the catalog taxonomy.
type CategoryService struct {
	repos Repositories
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repos Repositories) *CategoryService {
	return &CategoryService{repos: repos}
}

// CreateCategory adds a category. Names are unique.
func (s *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repos.Categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns every category.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repos.Categories.FindAll(ctx)
}
