package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coursehub/internal/cache"
	"coursehub/internal/database"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"
)

const noRatingsMessage = "no ratings yet"

// ReviewService handles ratings and reviews.
type ReviewService struct {
	repos       Repositories
	invalidator *cache.Invalidator
	tx          database.Transactor
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repos Repositories, invalidator *cache.Invalidator, tx database.Transactor) *ReviewService {
	return &ReviewService{repos: repos, invalidator: invalidator, tx: tx}
}

// CreateReview stores the actor's single review of a course they are enrolled in.
func (s *ReviewService) CreateReview(ctx context.Context, actor models.Actor, req *models.CreateReviewRequest) (*models.RatingAndReview, error) {
	courseID, err := parseObjectID(req.CourseID, apperrors.ErrCourseNotFound)
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

	_, err = s.repos.Reviews.FindByUserAndCourse(ctx, actor.ID, course.ID)
	switch {
	case err == nil:
		return nil, apperrors.ErrAlreadyReviewed
	case !errors.Is(err, apperrors.ErrReviewNotFound):
		return nil, err
	}

	review := &models.RatingAndReview{
		UserID:   actor.ID,
		CourseID: course.ID,
		Rating:   req.Rating,
		Review:   strings.TrimSpace(req.Review),
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Reviews.Create(ctx, review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		if err := s.repos.Courses.AddReview(ctx, course.ID, review.ID); err != nil {
			return fmt.Errorf("create review: link course: %w", err)
		}
		if err := s.repos.Users.AddReview(ctx, actor.ID, review.ID); err != nil {
			return fmt.Errorf("create review: link user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntityReview, CourseID: course.ID})
	return review, nil
}

// AverageRating returns the arithmetic mean rating of a course.
func (s *ReviewService) AverageRating(ctx context.Context, courseID string) (*models.AverageRating, error) {
	id, err := parseObjectID(courseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	if _, err := s.repos.Courses.FindByID(ctx, id); err != nil {
		return nil, err
	}

	avg, count, err := s.repos.Reviews.AverageForCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &models.AverageRating{CourseID: id, Count: count}
	if count == 0 {
		result.Message = noRatingsMessage
		return result, nil
	}
	result.HasRatings = true
	result.AverageRating = avg
	return result, nil
}

// ListReviews returns the newest reviews. A non-positive limit returns all.
func (s *ReviewService) ListReviews(ctx context.Context, limit int) ([]models.RatingAndReview, error) {
	if limit < 0 {
		limit = 0
	}
	return s.repos.Reviews.List(ctx, limit)
}
