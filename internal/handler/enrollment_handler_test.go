package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"
	"coursehub/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEnrollmentHandler_Enroll(t *testing.T) {
	courseID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		body           any
		err            error
		expectedStatus int
	}{
		{"enrolled", models.EnrollRequest{CourseID: courseID}, nil, http.StatusOK},
		{"already enrolled", models.EnrollRequest{CourseID: courseID}, apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{"draft course", models.EnrollRequest{CourseID: courseID}, apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"paid course", models.EnrollRequest{CourseID: courseID}, apperrors.ErrPaymentRequired, http.StatusBadRequest},
		{"malformed id", models.EnrollRequest{CourseID: "x"}, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrollments := &mocks.MockEnrollmentService{
				EnrollFunc: func(ctx context.Context, userID primitive.ObjectID, id string) error {
					assert.Equal(t, testStudent.ID, userID)
					return tt.err
				},
			}

			router := gin.New()
			router.POST("/course/buy", asActor(testStudent), NewEnrollmentHandler(enrollments, &mocks.MockProgressService{}).Enroll)

			req := httptest.NewRequest(http.MethodPost, "/course/buy", jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestEnrollmentHandler_MarkLectureComplete(t *testing.T) {
	body := models.MarkLectureRequest{CourseID: primitive.NewObjectID().Hex(), SubSectionID: primitive.NewObjectID().Hex()}

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"completed", nil, http.StatusOK},
		{"twice", apperrors.ErrLectureCompleted, http.StatusConflict},
		{"not enrolled", apperrors.ErrNotEnrolled, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := &mocks.MockProgressService{
				MarkLectureCompleteFunc: func(ctx context.Context, actor models.Actor, req *models.MarkLectureRequest) (*models.CourseProgress, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &models.CourseProgress{UserID: actor.ID}, nil
				},
			}

			router := gin.New()
			router.POST("/course/progress", asActor(testStudent), NewEnrollmentHandler(&mocks.MockEnrollmentService{}, progress).MarkLectureComplete)

			req := httptest.NewRequest(http.MethodPost, "/course/progress", jsonBody(t, body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
