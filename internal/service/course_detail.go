package service

import (
	"context"
	"errors"

	"coursehub/internal/cache"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// detailLoader assembles the full course tree behind the course detail cache.
type detailLoader struct {
	repos Repositories
	cache cache.Cache
}

// load returns the cached tree of courseID, building it on a miss.
func (l *detailLoader) load(ctx context.Context, courseID primitive.ObjectID) (*models.CourseDetail, error) {
	return cache.ReadThrough(ctx, l.cache, cache.CourseDetailKey(courseID.Hex()), cache.CourseDetailTTL,
		func(ctx context.Context) (*models.CourseDetail, error) {
			return l.build(ctx, courseID)
		})
}

func (l *detailLoader) build(ctx context.Context, courseID primitive.ObjectID) (*models.CourseDetail, error) {
	course, err := l.repos.Courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	detail := &models.CourseDetail{Course: *course}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		instructor, err := l.repos.Users.FindByID(gctx, course.InstructorID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return nil
			}
			return err
		}
		detail.Instructor = &models.InstructorSummary{
			ID:        instructor.ID,
			FirstName: instructor.FirstName,
			LastName:  instructor.LastName,
			ImageURL:  instructor.ImageURL,
			About:     instructor.About,
		}
		return nil
	})
	g.Go(func() error {
		if course.CategoryID.IsZero() {
			return nil
		}
		category, err := l.repos.Categories.FindByID(gctx, course.CategoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				return nil
			}
			return err
		}
		detail.CategoryName = category.Name
		return nil
	})
	g.Go(func() error {
		content, err := l.content(gctx, course.Sections)
		if err != nil {
			return err
		}
		detail.Content = content
		return nil
	})
	g.Go(func() error {
		avg, count, err := l.repos.Reviews.AverageForCourse(gctx, course.ID)
		if err != nil {
			return err
		}
		detail.AverageRating = avg
		detail.RatingCount = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail.TotalDurationSeconds = TotalDuration(detail.Content)
	detail.TotalDuration = FormatDuration(detail.TotalDurationSeconds)
	return detail, nil
}

// content resolves sections and their lessons in outline order.
func (l *detailLoader) content(ctx context.Context, sectionIDs []primitive.ObjectID) ([]models.SectionContent, error) {
	sections, err := l.repos.Sections.FindByIDs(ctx, sectionIDs)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	lessons, err := l.repos.SubSections.FindBySections(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.SubSection, len(lessons))
	for _, lesson := range lessons {
		byID[lesson.ID] = lesson
	}

	content := make([]models.SectionContent, 0, len(sections))
	for _, section := range sections {
		sc := models.SectionContent{Section: section, Lessons: make([]models.SubSection, 0, len(section.SubSections))}
		for _, id := range section.SubSections {
			if lesson, ok := byID[id]; ok {
				sc.Lessons = append(sc.Lessons, lesson)
			}
		}
		content = append(content, sc)
	}
	return content, nil
}

// TotalDuration sums lesson lengths across every section.
func TotalDuration(content []models.SectionContent) float64 {
	var total float64
	for _, section := range content {
		for _, lesson := range section.Lessons {
			total += float64(lesson.TimeDurationSeconds)
		}
	}
	return total
}

// lessonCount counts lessons across every section.
func lessonCount(content []models.SectionContent) int {
	n := 0
	for _, section := range content {
		n += len(section.Lessons)
	}
	return n
}

// publicView copies detail without lesson video URLs or student ids.
func publicView(detail *models.CourseDetail) *models.CourseDetail {
	view := *detail
	view.Course = detail.Course.Public()
	view.Content = make([]models.SectionContent, len(detail.Content))
	for i, section := range detail.Content {
		lessons := make([]models.SubSection, len(section.Lessons))
		for j, lesson := range section.Lessons {
			lesson.VideoURL = ""
			lessons[j] = lesson
		}
		section.Lessons = lessons
		view.Content[i] = section
	}
	return &view
}
