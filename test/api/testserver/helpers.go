//go:build api

package testserver

import (
	"bytes"
	"context"
	"image/color"
	"net/http"
	"strconv"
	"testing"

	"coursehub/internal/models"
	"coursehub/internal/payment"
	"coursehub/test/fixtures"
	"coursehub/test/testutil"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Signup creates an account through the API and returns it.
func (ts *TestServer) Signup(t *testing.T, firstName, email, accountType string) models.User {
	t.Helper()

	req := models.SignupRequest{
		FirstName:       firstName,
		LastName:        "Tester",
		Email:           email,
		Password:        fixtures.Password,
		ConfirmPassword: fixtures.Password,
		AccountType:     accountType,
	}

	w := testutil.MakeRequest(t, ts.Router, http.MethodPost, "/api/v1/auth/signup", req)
	require.Equal(t, http.StatusCreated, w.Code, "signup should return 201, got: %s", w.Body.String())
	return testutil.ParseData[models.User](t, w)
}

// Login signs in through the API and returns the token response.
func (ts *TestServer) Login(t *testing.T, email, password string) models.LoginResponse {
	t.Helper()

	req := models.LoginRequest{Email: email, Password: password}
	w := testutil.MakeRequest(t, ts.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())
	return testutil.ParseData[models.LoginResponse](t, w)
}

// SeedUser inserts a user directly and returns it with an access token.
func (ts *TestServer) SeedUser(t *testing.T, user *models.User) (*models.User, string) {
	t.Helper()

	require.NoError(t, ts.Repos.Users.Create(context.Background(), user), "failed to seed user")
	return user, ts.Token(user.ID.Hex(), user.Role)
}

// SeedCategory inserts a category directly.
func (ts *TestServer) SeedCategory(t *testing.T, name string) *models.Category {
	t.Helper()

	category := fixtures.NewCategory(name)
	require.NoError(t, ts.Repos.Categories.Create(context.Background(), category), "failed to seed category")
	return category
}

// SeedCourse inserts a course and links it to its instructor and category.
func (ts *TestServer) SeedCourse(t *testing.T, course *models.Course) *models.Course {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, ts.Repos.Courses.Create(ctx, course), "failed to seed course")
	require.NoError(t, ts.Repos.Users.AddCreatedCourse(ctx, course.InstructorID, course.ID))
	require.NoError(t, ts.Repos.Categories.AddCourse(ctx, course.CategoryID, course.ID))
	return course
}

// SeedLessons adds a section holding one lesson per duration to course.
func (ts *TestServer) SeedLessons(t *testing.T, course *models.Course, seconds ...float64) (*models.Section, []*models.SubSection) {
	t.Helper()
	ctx := context.Background()

	section := fixtures.NewSection(course.ID, "Section "+strconv.Itoa(len(course.Sections)+1))
	require.NoError(t, ts.Repos.Sections.Create(ctx, section))
	require.NoError(t, ts.Repos.Courses.AddSection(ctx, course.ID, section.ID))

	lessons := make([]*models.SubSection, 0, len(seconds))
	for i, s := range seconds {
		lesson := fixtures.NewSubSection(section, "Lesson "+strconv.Itoa(i+1), s)
		require.NoError(t, ts.Repos.SubSections.Create(ctx, lesson))
		require.NoError(t, ts.Repos.Sections.AddSubSection(ctx, section.ID, lesson.ID))
		lessons = append(lessons, lesson)
	}
	course.Sections = append(course.Sections, section.ID)
	return section, lessons
}

// Enroll writes an enrollment straight to storage, bypassing checkout.
func (ts *TestServer) Enroll(t *testing.T, userID, courseID primitive.ObjectID) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, ts.Repos.Courses.AddStudent(ctx, courseID, userID))
	require.NoError(t, ts.Repos.Users.AddEnrolledCourse(ctx, userID, courseID))
	require.NoError(t, ts.Repos.Progress.Init(ctx, userID, courseID))
}

// PNG renders a solid image suitable for thumbnail and avatar uploads.
func PNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := imaging.New(width, height, color.NRGBA{R: 0x20, G: 0x80, B: 0x40, A: 0xff})
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

// SignedNotification builds a gateway callback signed with TestServerKey.
func SignedNotification(orderID, transactionStatus string, amount float64) models.PaymentNotification {
	statusCode := "200"
	if transactionStatus != "settlement" && transactionStatus != "capture" {
		statusCode = "201"
	}
	gross := strconv.FormatFloat(amount, 'f', 2, 64)

	return models.PaymentNotification{
		OrderID:           orderID,
		StatusCode:        statusCode,
		GrossAmount:       gross,
		SignatureKey:      payment.Signature(orderID, statusCode, gross, TestServerKey),
		TransactionStatus: transactionStatus,
		FraudStatus:       "accept",
	}
}
