package service

import (
	"context"
	"fmt"
	"math"
	"mime/multipart"
	"strings"

	"coursehub/internal/authz"
	"coursehub/internal/cache"
	"coursehub/internal/database"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/media"
	"coursehub/internal/models"
	"coursehub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubSectionService manages video lessons.
type SubSectionService struct {
	repos       Repositories
	invalidator *cache.Invalidator
	media       media.Resolver
	authz       authz.Authorizer
	tx          database.Transactor
}

// NewSubSectionService creates a new SubSectionService.
func NewSubSectionService(cfg ContentServiceConfig) *SubSectionService {
	return &SubSectionService{
		repos:       cfg.Repos,
		invalidator: cfg.Invalidator,
		media:       cfg.Media,
		authz:       cfg.Authz,
		tx:          cfg.Transactor,
	}
}

// CreateSubSection uploads the video and appends a lesson to a section.
func (s *SubSectionService) CreateSubSection(ctx context.Context, actor models.Actor, form *models.SubSectionForm, video *multipart.FileHeader) (*models.SubSection, error) {
	sectionID, err := parseObjectID(form.SectionID, apperrors.ErrSectionNotFound)
	if err != nil {
		return nil, err
	}

	section, err := s.repos.Sections.FindByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authz.Authorize(ctx, actor, section.CourseID, authz.ActionContentManage); err != nil {
		return nil, err
	}

	if video == nil {
		return nil, apperrors.ErrVideoRequired
	}
	asset, err := s.media.UploadVideo(ctx, video, media.FolderVideos)
	if err != nil {
		return nil, err
	}

	lesson := &models.SubSection{
		SectionID:           section.ID,
		CourseID:            section.CourseID,
		Title:               strings.TrimSpace(form.Title),
		Description:         strings.TrimSpace(form.Description),
		VideoURL:            asset.URL,
		TimeDurationSeconds: models.Seconds(lessonDuration(asset, form.Duration)),
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.SubSections.Create(ctx, lesson); err != nil {
			return fmt.Errorf("create sub-section: %w", err)
		}
		if err := s.repos.Sections.AddSubSection(ctx, section.ID, lesson.ID); err != nil {
			return fmt.Errorf("create sub-section: link section: %w", err)
		}
		return nil
	})
	if err != nil {
		removeMedia(ctx, s.media, asset.URL)
		return nil, err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntitySubSection, CourseID: section.CourseID})
	return lesson, nil
}

// UpdateSubSection changes the supplied lesson fields. A new video replaces
// the old one together with its duration.
func (s *SubSectionService) UpdateSubSection(ctx context.Context, actor models.Actor, subSectionID string, form *models.UpdateSubSectionForm, video *multipart.FileHeader) (*models.SubSection, error) {
	lesson, err := s.ownedLesson(ctx, actor, subSectionID, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	patch := repository.SubSectionPatch{Duration: form.Duration}
	if form.Title != nil {
		title := strings.TrimSpace(*form.Title)
		patch.Title = &title
	}
	if form.Description != nil {
		description := strings.TrimSpace(*form.Description)
		patch.Description = &description
	}

	var newVideo string
	if video != nil {
		asset, err := s.media.UploadVideo(ctx, video, media.FolderVideos)
		if err != nil {
			return nil, err
		}
		newVideo = asset.URL
		duration := lessonDuration(asset, form.Duration)
		patch.VideoURL = &newVideo
		patch.Duration = &duration
	}

	updated, err := s.repos.SubSections.Update(ctx, lesson.ID, patch)
	if err != nil {
		removeMedia(ctx, s.media, newVideo)
		return nil, err
	}

	if newVideo != "" {
		removeMedia(ctx, s.media, lesson.VideoURL)
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntitySubSection, CourseID: lesson.CourseID})
	return updated, nil
}

// DeleteSubSection removes a lesson from sectionID.
func (s *SubSectionService) DeleteSubSection(ctx context.Context, actor models.Actor, subSectionID, sectionID string) error {
	parent, err := parseObjectID(sectionID, apperrors.ErrSectionNotFound)
	if err != nil {
		return err
	}

	lesson, err := s.ownedLesson(ctx, actor, subSectionID, parent)
	if err != nil {
		return err
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Sections.RemoveSubSection(ctx, lesson.SectionID, lesson.ID); err != nil {
			return fmt.Errorf("delete sub-section: unlink section: %w", err)
		}
		if err := s.repos.SubSections.Delete(ctx, lesson.ID); err != nil {
			return fmt.Errorf("delete sub-section: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntitySubSection, CourseID: lesson.CourseID})
	removeMedia(ctx, s.media, lesson.VideoURL)
	return nil
}

func (s *SubSectionService) ownedLesson(ctx context.Context, actor models.Actor, subSectionID string, sectionID primitive.ObjectID) (*models.SubSection, error) {
	id, err := parseObjectID(subSectionID, apperrors.ErrSubSectionNotFound)
	if err != nil {
		return nil, err
	}

	lesson, err := s.repos.SubSections.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sectionID.IsZero() && lesson.SectionID != sectionID {
		return nil, apperrors.ErrSubSectionNotFound
	}

	if _, err := s.authz.Authorize(ctx, actor, lesson.CourseID, authz.ActionContentManage); err != nil {
		return nil, err
	}
	return lesson, nil
}

// lessonDuration prefers the probed duration and falls back to the
// duration the client declared.
func lessonDuration(asset *media.Asset, declared *float64) float64 {
	if finitePositive(asset.DurationSeconds) {
		return asset.DurationSeconds
	}
	if declared != nil && finitePositive(*declared) {
		return *declared
	}
	return 0
}

func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
