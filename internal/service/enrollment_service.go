package service

import (
	"context"
	"fmt"
	"log"

	"coursehub/internal/cache"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/mailer"
	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentService links students to courses.
type EnrollmentService struct {
	repos       Repositories
	invalidator *cache.Invalidator
	notifier    MailNotifier
	recorder    EnrollmentRecorder
}

// EnrollmentServiceConfig holds configuration for EnrollmentService.
type EnrollmentServiceConfig struct {
	Repos       Repositories
	Invalidator *cache.Invalidator
	Notifier    MailNotifier
	Recorder    EnrollmentRecorder
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(cfg EnrollmentServiceConfig) *EnrollmentService {
	return &EnrollmentService{
		repos:       cfg.Repos,
		invalidator: cfg.Invalidator,
		notifier:    cfg.Notifier,
		recorder:    cfg.Recorder,
	}
}

// Enroll adds userID to a free published course. Paid courses are only
// reachable through checkout.
func (s *EnrollmentService) Enroll(ctx context.Context, userID primitive.ObjectID, courseID string) error {
	course, err := s.publishedCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if course.Price > 0 {
		return apperrors.ErrPaymentRequired
	}
	return s.enroll(ctx, userID, course)
}

// EnrollPurchased adds userID to a published course whose payment has been
// confirmed.
func (s *EnrollmentService) EnrollPurchased(ctx context.Context, userID primitive.ObjectID, courseID string) error {
	course, err := s.publishedCourse(ctx, courseID)
	if err != nil {
		return err
	}
	return s.enroll(ctx, userID, course)
}

func (s *EnrollmentService) publishedCourse(ctx context.Context, courseID string) (*models.Course, error) {
	id, err := parseObjectID(courseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	course, err := s.repos.Courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course.Status != models.CoursePublished {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// enroll links both sides of the enrollment.
//
// The course side is a conditional add that fails when the student is
// already present, so two concurrent calls cannot both succeed. If the
// user side then fails, the course side is pulled again.
func (s *EnrollmentService) enroll(ctx context.Context, userID primitive.ObjectID, course *models.Course) error {
	user, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repos.Courses.AddStudent(ctx, course.ID, user.ID); err != nil {
		return err
	}

	if err := s.repos.Users.AddEnrolledCourse(ctx, user.ID, course.ID); err != nil {
		if rbErr := s.repos.Courses.RemoveStudent(ctx, course.ID, user.ID); rbErr != nil {
			log.Printf("Failed to roll back enrollment of %s in %s: %v", user.ID.Hex(), course.ID.Hex(), rbErr)
		}
		return fmt.Errorf("enroll: add course to user: %w", err)
	}

	if err := s.repos.Progress.Init(ctx, user.ID, course.ID); err != nil {
		log.Printf("Failed to initialise progress for %s in %s: %v", user.ID.Hex(), course.ID.Hex(), err)
	}

	if s.recorder != nil {
		s.recorder.Enrolled()
	}
	s.notifier.Notify(mailer.EnrollmentConfirmed(user.Email, user.FirstName, course.CourseName))
	s.invalidator.Invalidate(ctx, cache.Mutation{
		Entity:      cache.EntityEnrollment,
		CourseID:    course.ID,
		CategoryIDs: []primitive.ObjectID{course.CategoryID},
	})
	return nil
}
