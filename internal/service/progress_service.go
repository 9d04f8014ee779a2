package service

import (
	"context"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"
)

// ProgressService tracks completed lessons.
type ProgressService struct {
	repos Repositories
}

// NewProgressService creates a new ProgressService.
func NewProgressService(repos Repositories) *ProgressService {
	return &ProgressService{repos: repos}
}

// MarkLectureComplete records a finished lesson for an enrolled student and
// returns the updated progress.
func (s *ProgressService) MarkLectureComplete(ctx context.Context, actor models.Actor, req *models.MarkLectureRequest) (*models.CourseProgress, error) {
	courseID, err := parseObjectID(req.CourseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return nil, err
	}
	lessonID, err := parseObjectID(req.SubSectionID, apperrors.ErrSubSectionNotFound)
	if err != nil {
		return nil, err
	}

	course, err := s.repos.Courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsEnrolled(actor.ID) {
		return nil, apperrors.ErrNotEnrolled
	}

	lesson, err := s.repos.SubSections.FindByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.CourseID != course.ID {
		return nil, apperrors.ErrSubSectionNotFound
	}

	if err := s.repos.Progress.MarkCompleted(ctx, actor.ID, course.ID, lesson.ID); err != nil {
		return nil, err
	}
	return s.repos.Progress.Find(ctx, actor.ID, course.ID)
}
