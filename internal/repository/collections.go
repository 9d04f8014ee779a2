package repository

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks coursehub/internal/repository UserRepository
//go:generate mockgen -destination=mocks/mock_category_repository.go -package=mocks coursehub/internal/repository CategoryRepository
//go:generate mockgen -destination=mocks/mock_course_repository.go -package=mocks coursehub/internal/repository CourseRepository
//go:generate mockgen -destination=mocks/mock_section_repository.go -package=mocks coursehub/internal/repository SectionRepository
//go:generate mockgen -destination=mocks/mock_subsection_repository.go -package=mocks coursehub/internal/repository SubSectionRepository
//go:generate mockgen -destination=mocks/mock_review_repository.go -package=mocks coursehub/internal/repository ReviewRepository
//go:generate mockgen -destination=mocks/mock_progress_repository.go -package=mocks coursehub/internal/repository ProgressRepository
//go:generate mockgen -destination=mocks/mock_payment_repository.go -package=mocks coursehub/internal/repository PaymentRepository

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	CollectionUsers       = "users"
	CollectionCategories  = "categories"
	CollectionCourses     = "courses"
	CollectionSections    = "sections"
	CollectionSubSections = "subsections"
	CollectionReviews     = "ratingandreviews"
	CollectionProgress    = "courseprogress"
	CollectionPayments    = "payments"
)

// skip returns the number of documents before page. Pages start at 1.
// Offsets past math.MaxInt64 saturate, which still yields an empty page.
func skip(page, limit int) int64 {
	if page < 1 || limit < 1 {
		return 0
	}
	before, size := int64(page-1), int64(limit)
	if before > math.MaxInt64/size {
		return math.MaxInt64
	}
	return before * size
}

// emptyIDs stores empty arrays rather than null so $addToSet and $size work.
func emptyIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return []primitive.ObjectID{}
	}
	return ids
}
