package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"coursehub/internal/authz"
	"coursehub/internal/cache"
	"coursehub/internal/database"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/media"
	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TopSellingLimit is the number of best sellers shown on a category page.
const TopSellingLimit = 10

// CourseService handles course authoring and catalog reads.
type CourseService struct {
	repos       Repositories
	cache       cache.Cache
	invalidator *cache.Invalidator
	media       media.Resolver
	authz       authz.Authorizer
	tx          database.Transactor
	details     *detailLoader
}

// CourseServiceConfig holds configuration for CourseService.
type CourseServiceConfig struct {
	Repos       Repositories
	Cache       cache.Cache
	Invalidator *cache.Invalidator
	Media       media.Resolver
	Authz       authz.Authorizer
	Transactor  database.Transactor
}

// NewCourseService creates a new CourseService.
func NewCourseService(cfg CourseServiceConfig) *CourseService {
	return &CourseService{
		repos:       cfg.Repos,
		cache:       cfg.Cache,
		invalidator: cfg.Invalidator,
		media:       cfg.Media,
		authz:       cfg.Authz,
		tx:          cfg.Transactor,
		details:     &detailLoader{repos: cfg.Repos, cache: cfg.Cache},
	}
}

// CreateCourse uploads the thumbnail and stores a course owned by actor.
func (s *CourseService) CreateCourse(ctx context.Context, actor models.Actor, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
	instructor, err := s.repos.Users.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, err
	}
	if instructor.Role != models.RoleInstructor {
		return nil, apperrors.ErrInstructorNotFound
	}

	categoryID, err := s.resolveCategory(ctx, form.CategoryID)
	if err != nil {
		return nil, err
	}

	if thumbnail == nil {
		return nil, apperrors.ErrThumbnailRequired
	}
	asset, err := s.media.UploadImage(ctx, thumbnail, media.FolderThumbnails)
	if err != nil {
		return nil, err
	}

	course := courseFromForm(form)
	course.InstructorID = instructor.ID
	course.CategoryID = categoryID
	course.ThumbnailURL = asset.URL

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Courses.Create(ctx, course); err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		if err := s.repos.Users.AddCreatedCourse(ctx, instructor.ID, course.ID); err != nil {
			return fmt.Errorf("create course: link instructor: %w", err)
		}
		if err := s.repos.Categories.AddCourse(ctx, categoryID, course.ID); err != nil {
			return fmt.Errorf("create course: link category: %w", err)
		}
		return nil
	})
	if err != nil {
		s.removeMedia(ctx, asset.URL)
		return nil, err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{
		Entity:      cache.EntityCourse,
		CourseID:    course.ID,
		CategoryIDs: []primitive.ObjectID{categoryID},
	})
	return course, nil
}

// EditCourse replaces every editable field of a course the actor owns.
func (s *CourseService) EditCourse(ctx context.Context, actor models.Actor, courseID string, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
	id, err := parseObjectID(courseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	course, err := s.authz.Authorize(ctx, actor, id, authz.ActionCourseEdit)
	if err != nil {
		return nil, err
	}

	oldCategory := course.CategoryID
	newCategory, err := s.resolveCategory(ctx, form.CategoryID)
	if err != nil {
		return nil, err
	}

	oldThumbnail := course.ThumbnailURL
	newThumbnail := oldThumbnail
	if thumbnail != nil {
		asset, err := s.media.UploadImage(ctx, thumbnail, media.FolderThumbnails)
		if err != nil {
			return nil, err
		}
		newThumbnail = asset.URL
	}

	updated := courseFromForm(form)
	if form.Status == "" {
		updated.Status = course.Status
	}
	updated.ID = course.ID
	updated.InstructorID = course.InstructorID
	updated.CategoryID = newCategory
	updated.ThumbnailURL = newThumbnail
	updated.Sections = course.Sections
	updated.Reviews = course.Reviews
	updated.StudentsEnrolled = course.StudentsEnrolled
	updated.CreatedAt = course.CreatedAt

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Courses.Update(ctx, updated); err != nil {
			return fmt.Errorf("edit course: %w", err)
		}
		if oldCategory == newCategory {
			return nil
		}
		if err := s.repos.Categories.RemoveCourse(ctx, oldCategory, course.ID); err != nil && !errors.Is(err, apperrors.ErrCategoryNotFound) {
			return fmt.Errorf("edit course: unlink old category: %w", err)
		}
		if err := s.repos.Categories.AddCourse(ctx, newCategory, course.ID); err != nil {
			return fmt.Errorf("edit course: link new category: %w", err)
		}
		return nil
	})
	if err != nil {
		if newThumbnail != oldThumbnail {
			s.removeMedia(ctx, newThumbnail)
		}
		return nil, err
	}

	if newThumbnail != oldThumbnail {
		s.removeMedia(ctx, oldThumbnail)
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{
		Entity:      cache.EntityCourse,
		CourseID:    course.ID,
		CategoryIDs: []primitive.ObjectID{oldCategory, newCategory},
	})
	return updated, nil
}

// DeleteCourse removes a course and everything that references it.
func (s *CourseService) DeleteCourse(ctx context.Context, actor models.Actor, courseID string) error {
	id, err := parseObjectID(courseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return err
	}

	course, err := s.authz.Authorize(ctx, actor, id, authz.ActionCourseDelete)
	if err != nil {
		return err
	}

	return s.deleteCourse(ctx, course)
}

func (s *CourseService) deleteCourse(ctx context.Context, course *models.Course) error {
	lessons, err := s.repos.SubSections.FindBySections(ctx, course.Sections)
	if err != nil {
		return err
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Users.PullEnrolledCourse(ctx, course.ID); err != nil {
			return fmt.Errorf("delete course: unenroll students: %w", err)
		}
		if err := s.repos.SubSections.DeleteByCourse(ctx, course.ID); err != nil {
			return fmt.Errorf("delete course: remove lessons: %w", err)
		}
		if err := s.repos.Sections.DeleteByCourse(ctx, course.ID); err != nil {
			return fmt.Errorf("delete course: remove sections: %w", err)
		}
		reviewIDs, err := s.repos.Reviews.IDsByCourse(ctx, course.ID)
		if err != nil {
			return fmt.Errorf("delete course: list reviews: %w", err)
		}
		if err := s.repos.Users.PullReviews(ctx, reviewIDs); err != nil {
			return fmt.Errorf("delete course: unlink reviews: %w", err)
		}
		if err := s.repos.Reviews.DeleteByCourse(ctx, course.ID); err != nil {
			return fmt.Errorf("delete course: remove reviews: %w", err)
		}
		if err := s.repos.Progress.DeleteByCourse(ctx, course.ID); err != nil {
			return fmt.Errorf("delete course: remove progress: %w", err)
		}
		if err := s.repos.Users.RemoveCreatedCourse(ctx, course.InstructorID, course.ID); err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
			return fmt.Errorf("delete course: unlink instructor: %w", err)
		}
		if !course.CategoryID.IsZero() {
			if err := s.repos.Categories.RemoveCourse(ctx, course.CategoryID, course.ID); err != nil && !errors.Is(err, apperrors.ErrCategoryNotFound) {
				return fmt.Errorf("delete course: unlink category: %w", err)
			}
		}
		if err := s.repos.Courses.Delete(ctx, course.ID); err != nil {
			return fmt.Errorf("delete course: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{
		Entity:      cache.EntityCourse,
		CourseID:    course.ID,
		CategoryIDs: []primitive.ObjectID{course.CategoryID},
	})

	s.removeMedia(ctx, course.ThumbnailURL)
	for _, lesson := range lessons {
		s.removeMedia(ctx, lesson.VideoURL)
	}
	return nil
}

// GetCourseDetail returns the public view of a course. Drafts are only
// visible to their owner and admins; to everyone else they do not exist.
func (s *CourseService) GetCourseDetail(ctx context.Context, viewer models.Actor, courseID string) (*models.CourseDetail, error) {
	id, err := parseObjectID(courseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	detail, err := s.details.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if detail.Status != models.CoursePublished &&
		!authz.Allowed(authz.RelationTo(viewer, &detail.Course), authz.ActionCourseViewDraft) {
		return nil, apperrors.ErrCourseNotFound
	}

	return publicView(detail), nil
}

// GetCourseContent returns the playable course tree with the actor's progress.
func (s *CourseService) GetCourseContent(ctx context.Context, actor models.Actor, courseID string) (*models.CourseContentView, error) {
	id, err := parseObjectID(courseID, apperrors.ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	if _, err := s.authz.Authorize(ctx, actor, id, authz.ActionContentView); err != nil {
		return nil, err
	}

	detail, err := s.details.load(ctx, id)
	if err != nil {
		return nil, err
	}

	completed := []primitive.ObjectID{}
	progress, err := s.repos.Progress.Find(ctx, actor.ID, id)
	switch {
	case err == nil:
		completed = progress.CompletedVideos
	case !errors.Is(err, apperrors.ErrProgressNotFound):
		return nil, err
	}

	view := *detail
	view.Course = detail.Course.Public()
	return &models.CourseContentView{
		CourseDetail:       view,
		CompletedVideos:    completed,
		ProgressPercentage: progressOf(detail.Content, completed),
	}, nil
}

// ListCourses runs the public catalog query over published courses.
func (s *CourseService) ListCourses(ctx context.Context, query models.CatalogQuery) (*models.CourseListResponse, error) {
	query.Page, query.Limit = normalizePage(query.Page, query.Limit, CatalogDefaultLimit)
	query.PublishedOnly = true
	query.InstructorID = primitive.NilObjectID

	courses, total, err := s.repos.Courses.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return models.NewCourseListResponse(models.PublicCourses(courses), total, query.Page, query.Limit), nil
}

// ListInstructorCourses lists the actor's own courses, drafts included.
func (s *CourseService) ListInstructorCourses(ctx context.Context, actor models.Actor, query models.CatalogQuery) (*models.CourseListResponse, error) {
	query.Page, query.Limit = normalizePage(query.Page, query.Limit, InstructorDefaultLimit)
	query.PublishedOnly = false
	query.InstructorID = actor.ID

	courses, total, err := s.repos.Courses.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return models.NewCourseListResponse(courses, total, query.Page, query.Limit), nil
}

// CoursesByCategory returns a category's published courses with the
// platform's best sellers.
func (s *CourseService) CoursesByCategory(ctx context.Context, categoryID string) (*models.CategoryCourses, error) {
	id, err := parseObjectID(categoryID, apperrors.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}

	return cache.ReadThrough(ctx, s.cache, cache.CategoryCoursesKey(id.Hex()), cache.CategoryCoursesTTL,
		func(ctx context.Context) (*models.CategoryCourses, error) {
			category, err := s.repos.Categories.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			courses, err := s.repos.Courses.FindPublishedByCategory(ctx, id)
			if err != nil {
				return nil, err
			}
			top, err := s.repos.Courses.TopSelling(ctx, TopSellingLimit)
			if err != nil {
				return nil, err
			}
			return &models.CategoryCourses{
				Category:    *category,
				Courses:     models.PublicCourses(courses),
				MostSelling: models.PublicCourses(top),
			}, nil
		})
}

// InstructorStats returns the per-course revenue of an instructor.
func (s *CourseService) InstructorStats(ctx context.Context, instructorID string) ([]models.InstructorCourseStats, error) {
	id, err := parseObjectID(instructorID, apperrors.ErrInstructorNotFound)
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleInstructor {
		return nil, apperrors.ErrInstructorNotFound
	}

	return s.repos.Courses.InstructorStats(ctx, id)
}

func (s *CourseService) resolveCategory(ctx context.Context, categoryID string) (primitive.ObjectID, error) {
	id, err := parseObjectID(categoryID, apperrors.ErrCategoryNotFound)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if _, err := s.repos.Categories.FindByID(ctx, id); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (s *CourseService) removeMedia(ctx context.Context, url string) {
	removeMedia(ctx, s.media, url)
}

// removeMedia deletes an uploaded asset, logging failures.
func removeMedia(ctx context.Context, resolver media.Resolver, url string) {
	if url == "" {
		return
	}
	if err := resolver.Remove(ctx, url); err != nil {
		log.Printf("Failed to remove media %s: %v", url, err)
	}
}

func courseFromForm(form *models.CourseForm) *models.Course {
	course := &models.Course{
		CourseName:        strings.TrimSpace(form.CourseName),
		CourseDescription: strings.TrimSpace(form.CourseDescription),
		WhatYouWillLearn:  form.WhatYouWillLearn,
		Language:          strings.TrimSpace(form.Language),
		Tags:              form.Tags,
		Instructions:      form.Instructions,
		Status:            models.CourseStatus(form.Status),
	}
	if form.Price != nil {
		course.Price = *form.Price
	}
	if course.Status == "" {
		course.Status = models.CourseDraft
	}
	return course
}

// progressOf is the share of the course's lessons found in completed.
// Ids of lessons that no longer exist are ignored.
func progressOf(content []models.SectionContent, completed []primitive.ObjectID) float64 {
	done := make(map[primitive.ObjectID]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	count := 0
	for _, section := range content {
		for _, lesson := range section.Lessons {
			if done[lesson.ID] {
				count++
			}
		}
	}
	return models.ProgressPercentage(count, lessonCount(content))
}
