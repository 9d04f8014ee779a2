package service

import (
	"context"
	"fmt"

	"coursehub/internal/cache"
	"coursehub/internal/database"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/media"
	"coursehub/internal/models"

	"golang.org/x/sync/errgroup"
)

// AdminService handles platform moderation and reporting.
type AdminService struct {
	repos       Repositories
	invalidator *cache.Invalidator
	media       media.Resolver
	tx          database.Transactor
}

// AdminServiceConfig holds configuration for AdminService.
type AdminServiceConfig struct {
	Repos       Repositories
	Invalidator *cache.Invalidator
	Media       media.Resolver
	Transactor  database.Transactor
}

// NewAdminService creates a new AdminService.
func NewAdminService(cfg AdminServiceConfig) *AdminService {
	return &AdminService{
		repos:       cfg.Repos,
		invalidator: cfg.Invalidator,
		media:       cfg.Media,
		tx:          cfg.Transactor,
	}
}

// Stats computes the platform rollup. Revenue is price times enrolled
// students summed over every course.
func (s *AdminService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	var (
		byRole  map[string]int
		courses int
		revenue float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byRole, err = s.repos.Users.CountByRole(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		courses, revenue, err = s.repos.Courses.Totals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &models.PlatformStats{
		TotalStudents:    byRole[models.RoleStudent],
		TotalInstructors: byRole[models.RoleInstructor],
		TotalCourses:     courses,
		TotalRevenue:     revenue,
	}
	for _, n := range byRole {
		stats.TotalUsers += n
	}
	return stats, nil
}

// ListUsers returns a page of users, optionally filtered by role.
func (s *AdminService) ListUsers(ctx context.Context, role string, page, limit int) (*models.UserListResponse, error) {
	if role != "" && !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	page, limit = normalizePage(page, limit, AdminDefaultLimit)
	users, total, err := s.repos.Users.List(ctx, role, page, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}

	return &models.UserListResponse{
		Items:      users,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListCourses returns a page of courses of every status.
func (s *AdminService) ListCourses(ctx context.Context, query models.CatalogQuery) (*models.CourseListPage, error) {
	query.Page, query.Limit = normalizePage(query.Page, query.Limit, AdminDefaultLimit)
	query.PublishedOnly = false

	courses, total, err := s.repos.Courses.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}

	return &models.CourseListPage{
		Items:      courses,
		Pagination: models.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// UpdateRole overrides a user's role.
func (s *AdminService) UpdateRole(ctx context.Context, req *models.UpdateRoleRequest) (*models.User, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidRole
	}

	id, err := parseObjectID(req.UserID, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users.UpdateRole(ctx, id, req.Role)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntityUser})
	return user, nil
}

// DeleteUser removes an account that owns no courses, together with its
// enrollments, reviews and progress.
func (s *AdminService) DeleteUser(ctx context.Context, actor models.Actor, userID string) error {
	id, err := parseObjectID(userID, apperrors.ErrUserNotFound)
	if err != nil {
		return err
	}
	if id == actor.ID {
		return apperrors.Validation("admins cannot delete their own account")
	}

	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	owned, err := s.repos.Courses.CountByInstructor(ctx, id)
	if err != nil {
		return err
	}
	if owned > 0 || len(user.CoursesCreated) > 0 {
		return apperrors.ErrUserOwnsCourses
	}

	reviewIDs, err := s.repos.Reviews.IDsByUser(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Courses.PullStudent(ctx, id); err != nil {
			return fmt.Errorf("delete user: remove enrollments: %w", err)
		}
		if len(reviewIDs) > 0 {
			if err := s.repos.Courses.PullReviews(ctx, reviewIDs); err != nil {
				return fmt.Errorf("delete user: unlink reviews: %w", err)
			}
		}
		if err := s.repos.Reviews.DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("delete user: remove reviews: %w", err)
		}
		if err := s.repos.Progress.DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("delete user: remove progress: %w", err)
		}
		if err := s.repos.Users.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidator.Invalidate(ctx, cache.Mutation{Entity: cache.EntityUser})
	removeMedia(ctx, s.media, user.ImageURL)
	return nil
}
