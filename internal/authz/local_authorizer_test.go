package authz

import (
	"context"
	"testing"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockCourseFinder is a test double for CourseFinder.
type mockCourseFinder struct {
	course *models.Course
	err    error
}

func (m *mockCourseFinder) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Course, error) {
	return m.course, m.err
}

func TestNewLocalAuthorizer(t *testing.T) {
	finder := &mockCourseFinder{}

	auth := NewLocalAuthorizer(finder)

	require.NotNil(t, auth)
	assert.Equal(t, finder, auth.courses)
}

func TestRelationTo(t *testing.T) {
	ownerID := primitive.NewObjectID()
	studentID := primitive.NewObjectID()
	course := &models.Course{InstructorID: ownerID, StudentsEnrolled: []primitive.ObjectID{studentID}}

	tests := []struct {
		name     string
		actor    models.Actor
		expected Relation
	}{
		{"anonymous", models.Actor{}, RelationNone},
		{"admin", models.Actor{ID: primitive.NewObjectID(), Role: models.RoleAdmin}, RelationAdmin},
		{"owner", models.Actor{ID: ownerID, Role: models.RoleInstructor}, RelationOwner},
		{"enrolled student", models.Actor{ID: studentID, Role: models.RoleStudent}, RelationStudent},
		{"stranger", models.Actor{ID: primitive.NewObjectID(), Role: models.RoleStudent}, RelationNone},
		{"other instructor", models.Actor{ID: primitive.NewObjectID(), Role: models.RoleInstructor}, RelationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RelationTo(tt.actor, course))
		})
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		relation Relation
		action   string
		expected bool
	}{
		{"owner can edit", RelationOwner, ActionCourseEdit, true},
		{"owner can delete", RelationOwner, ActionCourseDelete, true},
		{"owner can manage content", RelationOwner, ActionContentManage, true},
		{"owner can view content", RelationOwner, ActionContentView, true},
		{"owner can view draft", RelationOwner, ActionCourseViewDraft, true},
		{"owner cannot review", RelationOwner, ActionCourseReview, false},

		{"admin cannot edit", RelationAdmin, ActionCourseEdit, false},
		{"admin can delete", RelationAdmin, ActionCourseDelete, true},
		{"admin cannot manage content", RelationAdmin, ActionContentManage, false},
		{"admin can view content", RelationAdmin, ActionContentView, true},
		{"admin can view draft", RelationAdmin, ActionCourseViewDraft, true},

		{"student can view content", RelationStudent, ActionContentView, true},
		{"student can review", RelationStudent, ActionCourseReview, true},
		{"student cannot edit", RelationStudent, ActionCourseEdit, false},
		{"student cannot view draft", RelationStudent, ActionCourseViewDraft, false},

		{"stranger cannot view content", RelationNone, ActionContentView, false},
		{"stranger cannot review", RelationNone, ActionCourseReview, false},
		{"unknown action", RelationOwner, "course:teleport", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Allowed(tt.relation, tt.action))
		})
	}
}

func TestLocalAuthorizer_CanPerform(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	course := &models.Course{ID: primitive.NewObjectID(), InstructorID: ownerID}

	t.Run("owner allowed", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockCourseFinder{course: course})

		can, err := auth.CanPerform(ctx, models.Actor{ID: ownerID, Role: models.RoleInstructor}, course.ID, ActionCourseEdit)

		require.NoError(t, err)
		assert.True(t, can)
	})

	t.Run("stranger denied", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockCourseFinder{course: course})

		can, err := auth.CanPerform(ctx, models.Actor{ID: primitive.NewObjectID(), Role: models.RoleInstructor}, course.ID, ActionCourseEdit)

		require.NoError(t, err)
		assert.False(t, can)
	})

	t.Run("missing course propagates", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockCourseFinder{err: apperrors.ErrCourseNotFound})

		can, err := auth.CanPerform(ctx, models.Actor{ID: ownerID}, course.ID, ActionCourseEdit)

		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
		assert.False(t, can)
	})
}

func TestLocalAuthorizer_Authorize(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	course := &models.Course{ID: primitive.NewObjectID(), InstructorID: ownerID}

	t.Run("returns the course when allowed", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockCourseFinder{course: course})

		got, err := auth.Authorize(ctx, models.Actor{ID: ownerID, Role: models.RoleInstructor}, course.ID, ActionContentManage)

		require.NoError(t, err)
		assert.Equal(t, course, got)
	})

	t.Run("forbidden when not allowed", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockCourseFinder{course: course})

		got, err := auth.Authorize(ctx, models.Actor{ID: primitive.NewObjectID(), Role: models.RoleAdmin}, course.ID, ActionContentManage)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Nil(t, got)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockCourseFinder{err: assert.AnError})

		_, err := auth.Authorize(ctx, models.Actor{ID: ownerID}, course.ID, ActionCourseEdit)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
