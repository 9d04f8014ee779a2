package authz

import (
	"context"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseFinder is the lookup LocalAuthorizer needs.
type CourseFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
}

// LocalAuthorizer implements Authorizer from the course document itself.
type LocalAuthorizer struct {
	courses CourseFinder
}

var _ Authorizer = (*LocalAuthorizer)(nil)

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(courses CourseFinder) *LocalAuthorizer {
	return &LocalAuthorizer{courses: courses}
}

// relationPermissions maps actions to the relations allowed to perform them.
var relationPermissions = map[string][]Relation{
	ActionCourseViewDraft: {RelationOwner, RelationAdmin},
	ActionCourseEdit:      {RelationOwner},
	ActionCourseDelete:    {RelationOwner, RelationAdmin},
	ActionContentManage:   {RelationOwner},
	ActionContentView:     {RelationOwner, RelationAdmin, RelationStudent},
	ActionCourseReview:    {RelationStudent},
}

// RelationTo classifies actor against course. Admin wins over ownership,
// ownership over enrollment.
func RelationTo(actor models.Actor, course *models.Course) Relation {
	switch {
	case actor.ID.IsZero():
		return RelationNone
	case actor.IsAdmin():
		return RelationAdmin
	case course.InstructorID == actor.ID:
		return RelationOwner
	case course.IsEnrolled(actor.ID):
		return RelationStudent
	default:
		return RelationNone
	}
}

// Allowed reports whether rel permits action. Unknown actions are denied.
func Allowed(rel Relation, action string) bool {
	for _, r := range relationPermissions[action] {
		if r == rel {
			return true
		}
	}
	return false
}

// CanPerform loads the course and checks the action. A missing course is
// reported as ErrCourseNotFound rather than a denial.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, actor models.Actor, courseID primitive.ObjectID, action string) (bool, error) {
	course, err := a.courses.FindByID(ctx, courseID)
	if err != nil {
		return false, err
	}
	return Allowed(RelationTo(actor, course), action), nil
}

// Authorize returns the course when actor may perform action on it.
func (a *LocalAuthorizer) Authorize(ctx context.Context, actor models.Actor, courseID primitive.ObjectID, action string) (*models.Course, error) {
	course, err := a.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !Allowed(RelationTo(actor, course), action) {
		return nil, apperrors.ErrForbidden
	}
	return course, nil
}
