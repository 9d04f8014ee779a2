package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCourse(name string, price float64, status models.CourseStatus, categoryID, instructorID primitive.ObjectID) *models.Course {
	return &models.Course{
		CourseName:        name,
		CourseDescription: "About " + name,
		InstructorID:      instructorID,
		WhatYouWillLearn:  []string{"things"},
		Price:             price,
		Language:          "English",
		Tags:              []string{"go"},
		Instructions:      []string{"bring a laptop"},
		CategoryID:        categoryID,
		ThumbnailURL:      "http://cdn/thumb.webp",
		Status:            status,
	}
}

func TestCourseRepository_CreateAndFind(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCourseRepository(tdb.Database)
	ctx := context.Background()

	t.Run("defaults to draft with empty arrays", func(t *testing.T) {
		course := newTestCourse("Go", 100, "", primitive.NewObjectID(), primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, course))

		found, err := repo.FindByID(ctx, course.ID)

		require.NoError(t, err)
		assert.Equal(t, models.CourseDraft, found.Status)
		assert.NotNil(t, found.Sections)
		assert.NotNil(t, found.StudentsEnrolled)
	})

	t.Run("returns error for non-existent course", func(t *testing.T) {
		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrCourseNotFound, err)
	})

	t.Run("FindByIDs keeps requested order and skips missing ids", func(t *testing.T) {
		a := newTestCourse("A", 1, models.CoursePublished, primitive.NewObjectID(), primitive.NewObjectID())
		b := newTestCourse("B", 1, models.CoursePublished, primitive.NewObjectID(), primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		courses, err := repo.FindByIDs(ctx, []primitive.ObjectID{b.ID, primitive.NewObjectID(), a.ID})

		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, "B", courses[0].CourseName)
		assert.Equal(t, "A", courses[1].CourseName)
	})
}

func TestCourseRepository_Search(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCourseRepository(tdb.Database)
	ctx := context.Background()

	web := primitive.NewObjectID()
	data := primitive.NewObjectID()
	instructor := primitive.NewObjectID()

	fixtures := []*models.Course{
		newTestCourse("Intro to Go", 100, models.CoursePublished, web, instructor),
		newTestCourse("Advanced Go", 300, models.CoursePublished, web, instructor),
		newTestCourse("MongoDB Basics", 200, models.CoursePublished, data, instructor),
		newTestCourse("Secret Draft", 50, models.CourseDraft, data, instructor),
	}
	for _, c := range fixtures {
		require.NoError(t, repo.Create(ctx, c))
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("published only newest first", func(t *testing.T) {
		courses, total, err := repo.Search(ctx, models.CatalogQuery{Page: 1, Limit: 10, PublishedOnly: true})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, courses, 3)
		assert.Equal(t, "MongoDB Basics", courses[0].CourseName)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		courses, total, err := repo.Search(ctx, models.CatalogQuery{Page: 1, Limit: 10, PublishedOnly: true, Search: "go"})

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, courses, 2)
	})

	t.Run("category and price sort", func(t *testing.T) {
		courses, _, err := repo.Search(ctx, models.CatalogQuery{
			Page: 1, Limit: 10, PublishedOnly: true, Category: web.Hex(), Sort: models.SortPriceLow,
		})

		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, 100.0, courses[0].Price)
		assert.Equal(t, 300.0, courses[1].Price)
	})

	t.Run("pagination reports total across pages", func(t *testing.T) {
		courses, total, err := repo.Search(ctx, models.CatalogQuery{Page: 2, Limit: 2, PublishedOnly: true})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, courses, 1)
	})

	t.Run("instructor listing includes drafts", func(t *testing.T) {
		_, total, err := repo.Search(ctx, models.CatalogQuery{Page: 1, Limit: 10, InstructorID: instructor})

		require.NoError(t, err)
		assert.Equal(t, 4, total)
	})

	t.Run("by category returns published only", func(t *testing.T) {
		courses, err := repo.FindPublishedByCategory(ctx, data)

		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "MongoDB Basics", courses[0].CourseName)
	})
}

func TestCourseRepository_AddStudent(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCourseRepository(tdb.Database)
	ctx := context.Background()

	course := newTestCourse("Go", 100, models.CoursePublished, primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, repo.Create(ctx, course))

	t.Run("second enrollment is a conflict", func(t *testing.T) {
		userID := primitive.NewObjectID()

		require.NoError(t, repo.AddStudent(ctx, course.ID, userID))
		err := repo.AddStudent(ctx, course.ID, userID)

		assert.Equal(t, apperrors.ErrAlreadyEnrolled, err)
	})

	t.Run("missing course is not found", func(t *testing.T) {
		err := repo.AddStudent(ctx, primitive.NewObjectID(), primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrCourseNotFound, err)
	})

	t.Run("concurrent enrollments succeed exactly once", func(t *testing.T) {
		userID := primitive.NewObjectID()
		const attempts = 8

		var wg sync.WaitGroup
		errs := make(chan error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- repo.AddStudent(ctx, course.ID, userID)
			}()
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.Equal(t, apperrors.ErrAlreadyEnrolled, err)
		}
		assert.Equal(t, 1, succeeded)

		found, err := repo.FindByID(ctx, course.ID)
		require.NoError(t, err)
		count := 0
		for _, id := range found.StudentsEnrolled {
			if id == userID {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("pull student removes from every course", func(t *testing.T) {
		userID := primitive.NewObjectID()
		require.NoError(t, repo.AddStudent(ctx, course.ID, userID))

		require.NoError(t, repo.PullStudent(ctx, userID))

		found, err := repo.FindByID(ctx, course.ID)
		require.NoError(t, err)
		assert.False(t, found.IsEnrolled(userID))
	})
}

func TestCourseRepository_Aggregations(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCourseRepository(tdb.Database)
	ctx := context.Background()

	instructor := primitive.NewObjectID()
	category := primitive.NewObjectID()

	popular := newTestCourse("Popular", 100, models.CoursePublished, category, instructor)
	quiet := newTestCourse("Quiet", 50, models.CoursePublished, category, instructor)
	other := newTestCourse("Other", 10, models.CoursePublished, category, primitive.NewObjectID())
	for _, c := range []*models.Course{popular, quiet, other} {
		require.NoError(t, repo.Create(ctx, c))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AddStudent(ctx, popular.ID, primitive.NewObjectID()))
	}
	require.NoError(t, repo.AddStudent(ctx, quiet.ID, primitive.NewObjectID()))

	t.Run("totals", func(t *testing.T) {
		courses, revenue, err := repo.Totals(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, courses)
		assert.Equal(t, 350.0, revenue)
	})

	t.Run("instructor stats", func(t *testing.T) {
		stats, err := repo.InstructorStats(ctx, instructor)

		require.NoError(t, err)
		require.Len(t, stats, 2)
		byName := map[string]models.InstructorCourseStats{}
		for _, s := range stats {
			byName[s.CourseName] = s
		}
		assert.Equal(t, 3, byName["Popular"].StudentsEnrolledCount)
		assert.Equal(t, 300.0, byName["Popular"].RevenueGenerated)
		assert.Equal(t, 50.0, byName["Quiet"].RevenueGenerated)
		assert.Equal(t, popular.ID, byName["Popular"].CourseID)
	})

	t.Run("instructor without courses", func(t *testing.T) {
		stats, err := repo.InstructorStats(ctx, primitive.NewObjectID())

		require.NoError(t, err)
		assert.NotNil(t, stats)
		assert.Empty(t, stats)
	})

	t.Run("top selling", func(t *testing.T) {
		courses, err := repo.TopSelling(ctx, 2)

		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, "Popular", courses[0].CourseName)
		assert.Equal(t, "Quiet", courses[1].CourseName)
	})

	t.Run("count by instructor", func(t *testing.T) {
		count, err := repo.CountByInstructor(ctx, instructor)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestCourseRepository_UpdateAndDelete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCourseRepository(tdb.Database)
	ctx := context.Background()

	course := newTestCourse("Go", 100, models.CourseDraft, primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, repo.Create(ctx, course))

	course.CourseName = "Go, revised"
	course.Status = models.CoursePublished
	require.NoError(t, repo.Update(ctx, course))

	found, err := repo.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go, revised", found.CourseName)
	assert.Equal(t, models.CoursePublished, found.Status)

	sectionID := primitive.NewObjectID()
	require.NoError(t, repo.AddSection(ctx, course.ID, sectionID))
	require.NoError(t, repo.RemoveSection(ctx, course.ID, sectionID))

	reviewID := primitive.NewObjectID()
	require.NoError(t, repo.AddReview(ctx, course.ID, reviewID))
	require.NoError(t, repo.PullReviews(ctx, []primitive.ObjectID{reviewID}))

	found, err = repo.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Sections)
	assert.Empty(t, found.Reviews)

	require.NoError(t, repo.Delete(ctx, course.ID))
	assert.Equal(t, apperrors.ErrCourseNotFound, repo.Delete(ctx, course.ID))
	assert.Equal(t, apperrors.ErrCourseNotFound, repo.Update(ctx, course))
}
