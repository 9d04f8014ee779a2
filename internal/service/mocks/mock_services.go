// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"mime/multipart"

	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	SignupFunc         func(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ForgotPasswordFunc func(ctx context.Context, req *models.ForgotPasswordRequest) error
	ResetPasswordFunc  func(ctx context.Context, token string, req *models.ResetPasswordRequest) error
	ChangePasswordFunc func(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error
}

func (m *MockAuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, req)
	}
	return nil
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetProfileFunc           func(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateProfileFunc        func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error)
	UpdateDisplayPictureFunc func(ctx context.Context, userID primitive.ObjectID, image *multipart.FileHeader) (*models.User, error)
	GetEnrolledCoursesFunc   func(ctx context.Context, userID primitive.ObjectID) ([]models.EnrolledCourse, error)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockUserService) UpdateDisplayPicture(ctx context.Context, userID primitive.ObjectID, image *multipart.FileHeader) (*models.User, error) {
	if m.UpdateDisplayPictureFunc != nil {
		return m.UpdateDisplayPictureFunc(ctx, userID, image)
	}
	return nil, nil
}

func (m *MockUserService) GetEnrolledCourses(ctx context.Context, userID primitive.ObjectID) ([]models.EnrolledCourse, error) {
	if m.GetEnrolledCoursesFunc != nil {
		return m.GetEnrolledCoursesFunc(ctx, userID)
	}
	return nil, nil
}

// MockCategoryService is a mock implementation of CategoryServicer.
type MockCategoryService struct {
	CreateCategoryFunc func(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	ListCategoriesFunc func(ctx context.Context) ([]models.Category, error)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

// MockCourseService is a mock implementation of CourseServicer.
type MockCourseService struct {
	CreateCourseFunc          func(ctx context.Context, actor models.Actor, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error)
	EditCourseFunc            func(ctx context.Context, actor models.Actor, courseID string, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error)
	DeleteCourseFunc          func(ctx context.Context, actor models.Actor, courseID string) error
	GetCourseDetailFunc       func(ctx context.Context, viewer models.Actor, courseID string) (*models.CourseDetail, error)
	GetCourseContentFunc      func(ctx context.Context, actor models.Actor, courseID string) (*models.CourseContentView, error)
	ListCoursesFunc           func(ctx context.Context, query models.CatalogQuery) (*models.CourseListResponse, error)
	ListInstructorCoursesFunc func(ctx context.Context, actor models.Actor, query models.CatalogQuery) (*models.CourseListResponse, error)
	CoursesByCategoryFunc     func(ctx context.Context, categoryID string) (*models.CategoryCourses, error)
	InstructorStatsFunc       func(ctx context.Context, instructorID string) ([]models.InstructorCourseStats, error)
}

func (m *MockCourseService) CreateCourse(ctx context.Context, actor models.Actor, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
	if m.CreateCourseFunc != nil {
		return m.CreateCourseFunc(ctx, actor, form, thumbnail)
	}
	return nil, nil
}

func (m *MockCourseService) EditCourse(ctx context.Context, actor models.Actor, courseID string, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
	if m.EditCourseFunc != nil {
		return m.EditCourseFunc(ctx, actor, courseID, form, thumbnail)
	}
	return nil, nil
}

func (m *MockCourseService) DeleteCourse(ctx context.Context, actor models.Actor, courseID string) error {
	if m.DeleteCourseFunc != nil {
		return m.DeleteCourseFunc(ctx, actor, courseID)
	}
	return nil
}

func (m *MockCourseService) GetCourseDetail(ctx context.Context, viewer models.Actor, courseID string) (*models.CourseDetail, error) {
	if m.GetCourseDetailFunc != nil {
		return m.GetCourseDetailFunc(ctx, viewer, courseID)
	}
	return nil, nil
}

func (m *MockCourseService) GetCourseContent(ctx context.Context, actor models.Actor, courseID string) (*models.CourseContentView, error) {
	if m.GetCourseContentFunc != nil {
		return m.GetCourseContentFunc(ctx, actor, courseID)
	}
	return nil, nil
}

func (m *MockCourseService) ListCourses(ctx context.Context, query models.CatalogQuery) (*models.CourseListResponse, error) {
	if m.ListCoursesFunc != nil {
		return m.ListCoursesFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockCourseService) ListInstructorCourses(ctx context.Context, actor models.Actor, query models.CatalogQuery) (*models.CourseListResponse, error) {
	if m.ListInstructorCoursesFunc != nil {
		return m.ListInstructorCoursesFunc(ctx, actor, query)
	}
	return nil, nil
}

func (m *MockCourseService) CoursesByCategory(ctx context.Context, categoryID string) (*models.CategoryCourses, error) {
	if m.CoursesByCategoryFunc != nil {
		return m.CoursesByCategoryFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *MockCourseService) InstructorStats(ctx context.Context, instructorID string) ([]models.InstructorCourseStats, error) {
	if m.InstructorStatsFunc != nil {
		return m.InstructorStatsFunc(ctx, instructorID)
	}
	return nil, nil
}

// MockSectionService is a mock implementation of SectionServicer.
type MockSectionService struct {
	CreateSectionFunc func(ctx context.Context, actor models.Actor, req *models.CreateSectionRequest) (*models.Section, error)
	UpdateSectionFunc func(ctx context.Context, actor models.Actor, sectionID string, req *models.UpdateSectionRequest) (*models.Section, error)
	DeleteSectionFunc func(ctx context.Context, actor models.Actor, sectionID, courseID string) error
}

func (m *MockSectionService) CreateSection(ctx context.Context, actor models.Actor, req *models.CreateSectionRequest) (*models.Section, error) {
	if m.CreateSectionFunc != nil {
		return m.CreateSectionFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockSectionService) UpdateSection(ctx context.Context, actor models.Actor, sectionID string, req *models.UpdateSectionRequest) (*models.Section, error) {
	if m.UpdateSectionFunc != nil {
		return m.UpdateSectionFunc(ctx, actor, sectionID, req)
	}
	return nil, nil
}

func (m *MockSectionService) DeleteSection(ctx context.Context, actor models.Actor, sectionID, courseID string) error {
	if m.DeleteSectionFunc != nil {
		return m.DeleteSectionFunc(ctx, actor, sectionID, courseID)
	}
	return nil
}

// MockSubSectionService is a mock implementation of SubSectionServicer.
type MockSubSectionService struct {
	CreateSubSectionFunc func(ctx context.Context, actor models.Actor, form *models.SubSectionForm, video *multipart.FileHeader) (*models.SubSection, error)
	UpdateSubSectionFunc func(ctx context.Context, actor models.Actor, subSectionID string, form *models.UpdateSubSectionForm, video *multipart.FileHeader) (*models.SubSection, error)
	DeleteSubSectionFunc func(ctx context.Context, actor models.Actor, subSectionID, sectionID string) error
}

func (m *MockSubSectionService) CreateSubSection(ctx context.Context, actor models.Actor, form *models.SubSectionForm, video *multipart.FileHeader) (*models.SubSection, error) {
	if m.CreateSubSectionFunc != nil {
		return m.CreateSubSectionFunc(ctx, actor, form, video)
	}
	return nil, nil
}

func (m *MockSubSectionService) UpdateSubSection(ctx context.Context, actor models.Actor, subSectionID string, form *models.UpdateSubSectionForm, video *multipart.FileHeader) (*models.SubSection, error) {
	if m.UpdateSubSectionFunc != nil {
		return m.UpdateSubSectionFunc(ctx, actor, subSectionID, form, video)
	}
	return nil, nil
}

func (m *MockSubSectionService) DeleteSubSection(ctx context.Context, actor models.Actor, subSectionID, sectionID string) error {
	if m.DeleteSubSectionFunc != nil {
		return m.DeleteSubSectionFunc(ctx, actor, subSectionID, sectionID)
	}
	return nil
}

// MockEnrollmentService is a mock implementation of EnrollmentServicer and
// PurchaseEnroller.
type MockEnrollmentService struct {
	EnrollFunc          func(ctx context.Context, userID primitive.ObjectID, courseID string) error
	EnrollPurchasedFunc func(ctx context.Context, userID primitive.ObjectID, courseID string) error
}

func (m *MockEnrollmentService) Enroll(ctx context.Context, userID primitive.ObjectID, courseID string) error {
	if m.EnrollFunc != nil {
		return m.EnrollFunc(ctx, userID, courseID)
	}
	return nil
}

func (m *MockEnrollmentService) EnrollPurchased(ctx context.Context, userID primitive.ObjectID, courseID string) error {
	if m.EnrollPurchasedFunc != nil {
		return m.EnrollPurchasedFunc(ctx, userID, courseID)
	}
	return nil
}

// MockProgressService is a mock implementation of ProgressServicer.
type MockProgressService struct {
	MarkLectureCompleteFunc func(ctx context.Context, actor models.Actor, req *models.MarkLectureRequest) (*models.CourseProgress, error)
}

func (m *MockProgressService) MarkLectureComplete(ctx context.Context, actor models.Actor, req *models.MarkLectureRequest) (*models.CourseProgress, error) {
	if m.MarkLectureCompleteFunc != nil {
		return m.MarkLectureCompleteFunc(ctx, actor, req)
	}
	return nil, nil
}

// MockReviewService is a mock implementation of ReviewServicer.
type MockReviewService struct {
	CreateReviewFunc  func(ctx context.Context, actor models.Actor, req *models.CreateReviewRequest) (*models.RatingAndReview, error)
	AverageRatingFunc func(ctx context.Context, courseID string) (*models.AverageRating, error)
	ListReviewsFunc   func(ctx context.Context, limit int) ([]models.RatingAndReview, error)
}

func (m *MockReviewService) CreateReview(ctx context.Context, actor models.Actor, req *models.CreateReviewRequest) (*models.RatingAndReview, error) {
	if m.CreateReviewFunc != nil {
		return m.CreateReviewFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockReviewService) AverageRating(ctx context.Context, courseID string) (*models.AverageRating, error) {
	if m.AverageRatingFunc != nil {
		return m.AverageRatingFunc(ctx, courseID)
	}
	return nil, nil
}

func (m *MockReviewService) ListReviews(ctx context.Context, limit int) ([]models.RatingAndReview, error) {
	if m.ListReviewsFunc != nil {
		return m.ListReviewsFunc(ctx, limit)
	}
	return nil, nil
}

// MockAdminService is a mock implementation of AdminServicer.
type MockAdminService struct {
	StatsFunc       func(ctx context.Context) (*models.PlatformStats, error)
	ListUsersFunc   func(ctx context.Context, role string, page, limit int) (*models.UserListResponse, error)
	ListCoursesFunc func(ctx context.Context, query models.CatalogQuery) (*models.CourseListPage, error)
	UpdateRoleFunc  func(ctx context.Context, req *models.UpdateRoleRequest) (*models.User, error)
	DeleteUserFunc  func(ctx context.Context, actor models.Actor, userID string) error
}

func (m *MockAdminService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAdminService) ListUsers(ctx context.Context, role string, page, limit int) (*models.UserListResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, role, page, limit)
	}
	return nil, nil
}

func (m *MockAdminService) ListCourses(ctx context.Context, query models.CatalogQuery) (*models.CourseListPage, error) {
	if m.ListCoursesFunc != nil {
		return m.ListCoursesFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockAdminService) UpdateRole(ctx context.Context, req *models.UpdateRoleRequest) (*models.User, error) {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAdminService) DeleteUser(ctx context.Context, actor models.Actor, userID string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, actor, userID)
	}
	return nil
}

// MockPaymentService is a mock implementation of PaymentServicer.
type MockPaymentService struct {
	CaptureFunc            func(ctx context.Context, actor models.Actor, req *models.CapturePaymentRequest) (*models.CapturePaymentResponse, error)
	HandleNotificationFunc func(ctx context.Context, n *models.PaymentNotification) error
}

func (m *MockPaymentService) Capture(ctx context.Context, actor models.Actor, req *models.CapturePaymentRequest) (*models.CapturePaymentResponse, error) {
	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockPaymentService) HandleNotification(ctx context.Context, n *models.PaymentNotification) error {
	if m.HandleNotificationFunc != nil {
		return m.HandleNotificationFunc(ctx, n)
	}
	return nil
}

// MockAIService is a mock implementation of AIServicer.
type MockAIService struct {
	GenerateDescriptionFunc func(ctx context.Context, req *models.GenerateDescriptionRequest) (*models.GenerateDescriptionResponse, error)
}

func (m *MockAIService) GenerateDescription(ctx context.Context, req *models.GenerateDescriptionRequest) (*models.GenerateDescriptionResponse, error) {
	if m.GenerateDescriptionFunc != nil {
		return m.GenerateDescriptionFunc(ctx, req)
	}
	return nil, nil
}
