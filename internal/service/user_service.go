package service

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"coursehub/internal/cache"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/media"
	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles self-service profile operations.
type UserService struct {
	repos       Repositories
	invalidator *cache.Invalidator
	media       media.Resolver
	details     *detailLoader
}

// UserServiceConfig holds configuration for UserService.
type UserServiceConfig struct {
	Repos       Repositories
	Cache       cache.Cache
	Invalidator *cache.Invalidator
	Media       media.Resolver
}

// NewUserService creates a new UserService.
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		repos:       cfg.Repos,
		invalidator: cfg.Invalidator,
		media:       cfg.Media,
		details:     &detailLoader{repos: cfg.Repos, cache: cfg.Cache},
	}
}

// GetProfile retrieves the caller's account.
func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.repos.Users.FindByID(ctx, userID)
}

// UpdateProfile applies the non-nil profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repos.Users.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	// Instructor summaries are embedded in cached course pages.
	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntityUser})
	return user, nil
}

// UpdateDisplayPicture replaces the caller's avatar.
func (s *UserService) UpdateDisplayPicture(ctx context.Context, userID primitive.ObjectID, image *multipart.FileHeader) (*models.User, error) {
	if image == nil {
		return nil, apperrors.Validation("displayPicture is required")
	}

	current, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	asset, err := s.media.UploadImage(ctx, image, media.FolderAvatars)
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users.UpdateImage(ctx, userID, asset.URL)
	if err != nil {
		removeMedia(ctx, s.media, asset.URL)
		return nil, err
	}

	removeMedia(ctx, s.media, current.ImageURL)
	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntityUser})
	return user, nil
}

// GetEnrolledCourses lists the caller's courses with total duration and progress.
// Courses deleted since enrollment are skipped.
func (s *UserService) GetEnrolledCourses(ctx context.Context, userID primitive.ObjectID) ([]models.EnrolledCourse, error) {
	user, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.repos.Progress.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed := make(map[primitive.ObjectID]int, len(progress))
	for _, p := range progress {
		completed[p.CourseID] = len(p.CompletedVideos)
	}

	courses := make([]models.EnrolledCourse, 0, len(user.CoursesEnrolled))
	for _, courseID := range user.CoursesEnrolled {
		detail, err := s.details.load(ctx, courseID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				log.Printf("Enrolled course %s of user %s no longer exists", courseID.Hex(), userID.Hex())
				continue
			}
			return nil, err
		}

		courses = append(courses, models.EnrolledCourse{
			Course:             detail.Course.Public(),
			TotalDuration:      detail.TotalDuration,
			ProgressPercentage: models.ProgressPercentage(completed[courseID], lessonCount(detail.Content)),
		})
	}
	return courses, nil
}
