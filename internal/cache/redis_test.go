package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCourseDetailKey(t *testing.T) {
	tests := []struct {
		name     string
		courseID string
		expected string
	}{
		{"objectid format", "507f1f77bcf86cd799439011", "course:full:507f1f77bcf86cd799439011"},
		{"empty string", "", "course:full:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CourseDetailKey(tt.courseID))
		})
	}
}

func TestCategoryCoursesKey(t *testing.T) {
	assert.Equal(t, "courses:category:507f1f77bcf86cd799439011", CategoryCoursesKey("507f1f77bcf86cd799439011"))
}

func TestTTLs(t *testing.T) {
	assert.Equal(t, 20*time.Minute, CourseDetailTTL)
	assert.Equal(t, 10*time.Minute, CategoryCoursesTTL)
	assert.Equal(t, "courses:all", AllCoursesKey)
}
