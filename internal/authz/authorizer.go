// Package authz decides what an actor may do with a course.
package authz

import (
	"context"

	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course actions.
const (
	ActionCourseViewDraft = "course:view_draft"
	ActionCourseEdit      = "course:edit"
	ActionCourseDelete    = "course:delete"
	ActionContentManage   = "content:manage"
	ActionContentView     = "content:view"
	ActionCourseReview    = "course:review"
)

// Relation is how an actor stands to a course.
type Relation string

const (
	RelationNone    Relation = ""
	RelationStudent Relation = "student"
	RelationOwner   Relation = "owner"
	RelationAdmin   Relation = "admin"
)

// Authorizer checks course capabilities.
type Authorizer interface {
	// CanPerform reports whether actor may perform action on the course.
	CanPerform(ctx context.Context, actor models.Actor, courseID primitive.ObjectID, action string) (bool, error)

	// Authorize loads the course and fails with ErrForbidden when the
	// action is not allowed.
	Authorize(ctx context.Context, actor models.Actor, courseID primitive.ObjectID, action string) (*models.Course, error)
}
