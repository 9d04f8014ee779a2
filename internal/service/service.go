package service

import (
	"fmt"
	"math"

	"coursehub/internal/mailer"
	"coursehub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repositories bundles the data access layer handed to services.
type Repositories struct {
	Users       repository.UserRepository
	Categories  repository.CategoryRepository
	Courses     repository.CourseRepository
	Sections    repository.SectionRepository
	SubSections repository.SubSectionRepository
	Reviews     repository.ReviewRepository
	Progress    repository.ProgressRepository
	Payments    repository.PaymentRepository
}

// MailNotifier hands a message to the delivery pipeline. It never fails.
type MailNotifier interface {
	Notify(msg mailer.Message)
}

// EnrollmentRecorder counts completed enrollments.
type EnrollmentRecorder interface {
	Enrolled()
}

// Listing page sizes.
const (
	CatalogDefaultLimit    = 9
	InstructorDefaultLimit = 10
	AdminDefaultLimit      = 10
	MaxPageLimit           = 50
	MaxPage                = 1_000_000
)

// normalizePage coerces page into [1, MaxPage] and limit into [1, MaxPageLimit].
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// FormatDuration renders seconds as M:SS, or H:MM:SS when at least an hour.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	total := int64(math.Floor(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// parseObjectID parses a hex id, returning notFound when it is malformed.
func parseObjectID(hex string, notFound error) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return id, nil
}
