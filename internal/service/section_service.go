package service

import (
	"context"
	"fmt"
	"strings"

	"coursehub/internal/authz"
	"coursehub/internal/cache"
	"coursehub/internal/database"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/media"
	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionService manages the sections of a course outline.
type SectionService struct {
	repos       Repositories
	invalidator *cache.Invalidator
	media       media.Resolver
	authz       authz.Authorizer
	tx          database.Transactor
}

// ContentServiceConfig holds the dependencies of the course content services.
type ContentServiceConfig struct {
	Repos       Repositories
	Invalidator *cache.Invalidator
	Media       media.Resolver
	Authz       authz.Authorizer
	Transactor  database.Transactor
}

// NewSectionService creates a new SectionService.
func NewSectionService(cfg ContentServiceConfig) *SectionService {
	return &SectionService{
		repos:       cfg.Repos,
		invalidator: cfg.Invalidator,
		media:       cfg.Media,
		authz:       cfg.Authz,
		tx:          cfg.Transactor,
	}
}

// CreateSection appends an empty section to a course the actor owns.
func (s *SectionService) CreateSection(ctx context.Context, actor models.Actor, req *models.CreateSectionRequest) (*models.Section, error) {
	courseID, err := parseObjectID(req.CourseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	if _, err := s.authz.Authorize(ctx, actor, courseID, authz.ActionContentManage); err != nil {
		return nil, err
	}

	section := &models.Section{CourseID: courseID, Title: strings.TrimSpace(req.Title)}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Sections.Create(ctx, section); err != nil {
			return fmt.Errorf("create section: %w", err)
		}
		if err := s.repos.Courses.AddSection(ctx, courseID, section.ID); err != nil {
			return fmt.Errorf("create section: link course: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntitySection, CourseID: courseID})
	return section, nil
}

// UpdateSection renames a section.
func (s *SectionService) UpdateSection(ctx context.Context, actor models.Actor, sectionID string, req *models.UpdateSectionRequest) (*models.Section, error) {
	section, err := s.ownedSection(ctx, actor, sectionID, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repos.Sections.UpdateTitle(ctx, section.ID, strings.TrimSpace(req.Title))
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntitySection, CourseID: section.CourseID})
	return updated, nil
}

// DeleteSection removes a section and its lessons from courseID.
func (s *SectionService) DeleteSection(ctx context.Context, actor models.Actor, sectionID, courseID string) error {
	parent, err := parseObjectID(courseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return err
	}

	section, err := s.ownedSection(ctx, actor, sectionID, parent)
	if err != nil {
		return err
	}

	lessons, err := s.repos.SubSections.FindBySections(ctx, []primitive.ObjectID{section.ID})
	if err != nil {
		return err
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.SubSections.DeleteBySection(ctx, section.ID); err != nil {
			return fmt.Errorf("delete section: remove lessons: %w", err)
		}
		if err := s.repos.Courses.RemoveSection(ctx, section.CourseID, section.ID); err != nil {
			return fmt.Errorf("delete section: unlink course: %w", err)
		}
		if err := s.repos.Sections.Delete(ctx, section.ID); err != nil {
			return fmt.Errorf("delete section: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntitySection, CourseID: section.CourseID})
	for _, lesson := range lessons {
		removeMedia(ctx, s.media, lesson.VideoURL)
	}
	return nil
}

// ownedSection loads a section and checks the actor may manage its course.
// A non-zero courseID must match the section's course.
func (s *SectionService) ownedSection(ctx context.Context, actor models.Actor, sectionID string, courseID primitive.ObjectID) (*models.Section, error) {
	id, err := parseObjectID(sectionID, apperrors.ErrSectionNotFound)
	if err != nil {
		return nil, err
	}

	section, err := s.repos.Sections.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !courseID.IsZero() && section.CourseID != courseID {
		return nil, apperrors.ErrSectionNotFound
	}

	if _, err := s.authz.Authorize(ctx, actor, section.CourseID, authz.ActionContentManage); err != nil {
		return nil, err
	}
	return section, nil
}
