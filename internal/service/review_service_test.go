package service

import (
	"context"
	"testing"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestReviewService_CreateReview(t *testing.T) {
	student := studentActor()
	req := func(courseID primitive.ObjectID) *models.CreateReviewRequest {
		return &models.CreateReviewRequest{CourseID: courseID.Hex(), Rating: 4, Review: " Clear and practical. "}
	}

	t.Run("stores the review and links it both ways", func(t *testing.T) {
		m := newServiceMocks(t)
		m.allowInvalidation()
		svc := NewReviewService(m.repos(), m.invalidator(), m.tx)
		course := publishedCourse(primitive.NewObjectID())
		course.StudentsEnrolled = []primitive.ObjectID{student.ID}

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.reviews.EXPECT().FindByUserAndCourse(gomock.Any(), student.ID, course.ID).Return(nil, apperrors.ErrReviewNotFound)
		m.reviews.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *models.RatingAndReview) error {
				r.ID = primitive.NewObjectID()
				assert.Equal(t, "Clear and practical.", r.Review)
				assert.Equal(t, 4, r.Rating)
				return nil
			})
		m.courses.EXPECT().AddReview(gomock.Any(), course.ID, gomock.Any()).Return(nil)
		m.users.EXPECT().AddReview(gomock.Any(), student.ID, gomock.Any()).Return(nil)

		review, err := svc.CreateReview(context.Background(), student, req(course.ID))

		require.NoError(t, err)
		assert.Equal(t, course.ID, review.CourseID)
	})

	t.Run("requires enrollment", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewReviewService(m.repos(), m.invalidator(), m.tx)
		course := publishedCourse(primitive.NewObjectID())

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)

		_, err := svc.CreateReview(context.Background(), student, req(course.ID))

		assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("second review is a conflict", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewReviewService(m.repos(), m.invalidator(), m.tx)
		course := publishedCourse(primitive.NewObjectID())
		course.StudentsEnrolled = []primitive.ObjectID{student.ID}

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.reviews.EXPECT().FindByUserAndCourse(gomock.Any(), student.ID, course.ID).Return(&models.RatingAndReview{}, nil)

		_, err := svc.CreateReview(context.Background(), student, req(course.ID))

		assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)
	})

	t.Run("unique index race is a conflict too", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewReviewService(m.repos(), m.invalidator(), m.tx)
		course := publishedCourse(primitive.NewObjectID())
		course.StudentsEnrolled = []primitive.ObjectID{student.ID}

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.reviews.EXPECT().FindByUserAndCourse(gomock.Any(), student.ID, course.ID).Return(nil, apperrors.ErrReviewNotFound)
		m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrAlreadyReviewed)

		_, err := svc.CreateReview(context.Background(), student, req(course.ID))

		assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)
	})
}

func TestReviewService_AverageRating(t *testing.T) {
	t.Run("returns the unrounded mean", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewReviewService(m.repos(), m.invalidator(), m.tx)
		course := publishedCourse(primitive.NewObjectID())

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.reviews.EXPECT().AverageForCourse(gomock.Any(), course.ID).Return(13.0/3, 3, nil)

		avg, err := svc.AverageRating(context.Background(), course.ID.Hex())

		require.NoError(t, err)
		assert.True(t, avg.HasRatings)
		assert.InDelta(t, 13.0/3, avg.AverageRating, 1e-9)
		assert.Equal(t, 3, avg.Count)
	})

	t.Run("no ratings is not an error", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewReviewService(m.repos(), m.invalidator(), m.tx)
		course := publishedCourse(primitive.NewObjectID())

		m.courses.EXPECT().FindByID(gomock.Any(), course.ID).Return(course, nil)
		m.reviews.EXPECT().AverageForCourse(gomock.Any(), course.ID).Return(0.0, 0, nil)

		avg, err := svc.AverageRating(context.Background(), course.ID.Hex())

		require.NoError(t, err)
		assert.False(t, avg.HasRatings)
		assert.Zero(t, avg.AverageRating)
		assert.Equal(t, "no ratings yet", avg.Message)
	})

	t.Run("missing course", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewReviewService(m.repos(), m.invalidator(), m.tx)

		m.courses.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrCourseNotFound)

		_, err := svc.AverageRating(context.Background(), primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestReviewService_ListReviews(t *testing.T) {
	m := newServiceMocks(t)
	svc := NewReviewService(m.repos(), m.invalidator(), m.tx)

	m.reviews.EXPECT().List(gomock.Any(), 0).Return([]models.RatingAndReview{{Rating: 5}}, nil)

	reviews, err := svc.ListReviews(context.Background(), -1)

	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestCategoryService(t *testing.T) {
	t.Run("create trims input", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewCategoryService(m.repos())

		m.categories.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *models.Category) error {
				assert.Equal(t, "Databases", c.Name)
				c.ID = primitive.NewObjectID()
				return nil
			})

		category, err := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{Name: " Databases "})

		require.NoError(t, err)
		assert.False(t, category.ID.IsZero())
	})

	t.Run("duplicate name", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewCategoryService(m.repos())

		m.categories.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrCategoryAlreadyExists)

		_, err := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{Name: "Databases"})

		assert.ErrorIs(t, err, apperrors.ErrCategoryAlreadyExists)
	})

	t.Run("list", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := NewCategoryService(m.repos())

		m.categories.EXPECT().FindAll(gomock.Any()).Return([]models.Category{{Name: "Databases"}}, nil)

		categories, err := svc.ListCategories(context.Background())

		require.NoError(t, err)
		assert.Len(t, categories, 1)
	})
}
