// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// AppError is a classified error carrying a client-safe message.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError of the given kind.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Validation returns a validation error with a field-level message.
func Validation(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

// Upstream wraps a failure of an external collaborator (media host, mail, payment, AI).
func Upstream(op string, err error) error {
	return &AppError{Kind: KindUpstream, Message: op + " failed", Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// User errors
var (
	ErrUserNotFound       = New(KindNotFound, "user not found")
	ErrUserAlreadyExists  = New(KindConflict, "user with this email already exists")
	ErrInvalidCredentials = New(KindUnauthorized, "invalid email or password")
	ErrPasswordMismatch   = New(KindValidation, "password and confirm password do not match")
	ErrInvalidRole        = New(KindValidation, "invalid role, must be student, instructor or admin")
	ErrUserOwnsCourses    = New(KindConflict, "user still owns courses, delete or reassign them first")
)

// Auth errors
var (
	ErrUnauthorized      = New(KindUnauthorized, "unauthorized")
	ErrForbidden         = New(KindForbidden, "you are not allowed to perform this action")
	ErrInvalidResetToken = New(KindValidation, "reset token is invalid")
	ErrResetTokenExpired = New(KindValidation, "reset token has expired, request a new one")
)

// Category errors
var (
	ErrCategoryNotFound      = New(KindNotFound, "category not found")
	ErrCategoryAlreadyExists = New(KindConflict, "category with this name already exists")
)

// Content tree errors
var (
	ErrCourseNotFound       = New(KindNotFound, "course not found")
	ErrSectionNotFound      = New(KindNotFound, "section not found")
	ErrSubSectionNotFound   = New(KindNotFound, "sub-section not found")
	ErrInstructorNotFound   = New(KindNotFound, "instructor not found")
	ErrThumbnailRequired    = New(KindValidation, "thumbnail image is required")
	ErrVideoRequired        = New(KindValidation, "video file is required")
	ErrUnsupportedMediaType = New(KindValidation, "unsupported media type")
)

// Enrollment and progress errors
var (
	ErrAlreadyEnrolled    = New(KindConflict, "student is already enrolled")
	ErrNotEnrolled        = New(KindNotFound, "student is not enrolled in this course")
	ErrLectureCompleted   = New(KindConflict, "lecture already marked as completed")
	ErrProgressNotFound   = New(KindNotFound, "course progress not found")
	ErrCourseNotPurchased = New(KindValidation, "course is not available for purchase")
	ErrPaymentRequired    = New(KindValidation, "course requires payment, use checkout")
)

// Review errors
var (
	ErrAlreadyReviewed = New(KindConflict, "course already reviewed by this user")
	ErrReviewNotFound  = New(KindNotFound, "review not found")
)

// Payment errors
var (
	ErrOrderNotFound    = New(KindNotFound, "payment order not found")
	ErrInvalidSignature = New(KindForbidden, "invalid notification signature")
	ErrEmptyCart        = New(KindValidation, "at least one course is required")
)
