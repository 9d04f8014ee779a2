// Package service contains business logic for the application.
package service

import (
	"context"
	"mime/multipart"

	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error
}

// UserServicer defines the interface for profile operations.
type UserServicer interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error)
	UpdateDisplayPicture(ctx context.Context, userID primitive.ObjectID, image *multipart.FileHeader) (*models.User, error)
	GetEnrolledCourses(ctx context.Context, userID primitive.ObjectID) ([]models.EnrolledCourse, error)
}

// CategoryServicer defines the interface for category operations.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// CourseServicer defines the interface for course operations.
type CourseServicer interface {
	// Authoring
	CreateCourse(ctx context.Context, actor models.Actor, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error)
	EditCourse(ctx context.Context, actor models.Actor, courseID string, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error)
	DeleteCourse(ctx context.Context, actor models.Actor, courseID string) error

	// Reads
	GetCourseDetail(ctx context.Context, viewer models.Actor, courseID string) (*models.CourseDetail, error)
	GetCourseContent(ctx context.Context, actor models.Actor, courseID string) (*models.CourseContentView, error)
	ListCourses(ctx context.Context, query models.CatalogQuery) (*models.CourseListResponse, error)
	ListInstructorCourses(ctx context.Context, actor models.Actor, query models.CatalogQuery) (*models.CourseListResponse, error)
	CoursesByCategory(ctx context.Context, categoryID string) (*models.CategoryCourses, error)
	InstructorStats(ctx context.Context, instructorID string) ([]models.InstructorCourseStats, error)
}

// SectionServicer defines the interface for section operations.
type SectionServicer interface {
	CreateSection(ctx context.Context, actor models.Actor, req *models.CreateSectionRequest) (*models.Section, error)
	UpdateSection(ctx context.Context, actor models.Actor, sectionID string, req *models.UpdateSectionRequest) (*models.Section, error)
	DeleteSection(ctx context.Context, actor models.Actor, sectionID, courseID string) error
}

// SubSectionServicer defines the interface for lesson operations.
type SubSectionServicer interface {
	CreateSubSection(ctx context.Context, actor models.Actor, form *models.SubSectionForm, video *multipart.FileHeader) (*models.SubSection, error)
	UpdateSubSection(ctx context.Context, actor models.Actor, subSectionID string, form *models.UpdateSubSectionForm, video *multipart.FileHeader) (*models.SubSection, error)
	DeleteSubSection(ctx context.Context, actor models.Actor, subSectionID, sectionID string) error
}

// EnrollmentServicer defines the interface for direct enrollment.
type EnrollmentServicer interface {
	Enroll(ctx context.Context, userID primitive.ObjectID, courseID string) error
}

// PurchaseEnroller enrolls buyers once their payment is confirmed.
type PurchaseEnroller interface {
	EnrollPurchased(ctx context.Context, userID primitive.ObjectID, courseID string) error
}

// ProgressServicer defines the interface for progress tracking.
type ProgressServicer interface {
	MarkLectureComplete(ctx context.Context, actor models.Actor, req *models.MarkLectureRequest) (*models.CourseProgress, error)
}

// ReviewServicer defines the interface for review operations.
type ReviewServicer interface {
	CreateReview(ctx context.Context, actor models.Actor, req *models.CreateReviewRequest) (*models.RatingAndReview, error)
	AverageRating(ctx context.Context, courseID string) (*models.AverageRating, error)
	ListReviews(ctx context.Context, limit int) ([]models.RatingAndReview, error)
}

// AdminServicer defines the interface for admin operations.
type AdminServicer interface {
	Stats(ctx context.Context) (*models.PlatformStats, error)
	ListUsers(ctx context.Context, role string, page, limit int) (*models.UserListResponse, error)
	ListCourses(ctx context.Context, query models.CatalogQuery) (*models.CourseListPage, error)
	UpdateRole(ctx context.Context, req *models.UpdateRoleRequest) (*models.User, error)
	DeleteUser(ctx context.Context, actor models.Actor, userID string) error
}

// PaymentServicer defines the interface for checkout.
type PaymentServicer interface {
	Capture(ctx context.Context, actor models.Actor, req *models.CapturePaymentRequest) (*models.CapturePaymentResponse, error)
	HandleNotification(ctx context.Context, n *models.PaymentNotification) error
}

// AIServicer defines the interface for generated course copy.
type AIServicer interface {
	GenerateDescription(ctx context.Context, req *models.GenerateDescriptionRequest) (*models.GenerateDescriptionResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer       = (*AuthService)(nil)
	_ UserServicer       = (*UserService)(nil)
	_ CategoryServicer   = (*CategoryService)(nil)
	_ CourseServicer     = (*CourseService)(nil)
	_ SectionServicer    = (*SectionService)(nil)
	_ SubSectionServicer = (*SubSectionService)(nil)
	_ EnrollmentServicer = (*EnrollmentService)(nil)
	_ ProgressServicer   = (*ProgressService)(nil)
	_ ReviewServicer     = (*ReviewService)(nil)
	_ AdminServicer      = (*AdminService)(nil)
	_ PaymentServicer    = (*PaymentService)(nil)
	_ AIServicer         = (*AIService)(nil)
)
