package cache

import (
	"fmt"
	"time"
)

const (
	// CourseDetailTTL bounds staleness of the full course tree.
	CourseDetailTTL = 1200 * time.Second
	// CategoryCoursesTTL bounds staleness of courses-by-category pages.
	CategoryCoursesTTL = 600 * time.Second

	// AllCoursesKey is reserved for an unfiltered course list.
	AllCoursesKey = "courses:all"

	courseDetailPattern    = "course:full:*"
	categoryCoursesPattern = "courses:category:*"
)

// CourseDetailKey is the cache key of a full course tree.
func CourseDetailKey(courseID string) string {
	return fmt.Sprintf("course:full:%s", courseID)
}

// CategoryCoursesKey is the cache key of a courses-by-category page.
func CategoryCoursesKey(categoryID string) string {
	return fmt.Sprintf("courses:category:%s", categoryID)
}
