package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"
	"coursehub/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserHandler_GetProfile(t *testing.T) {
	tests := []struct {
		name           string
		authenticated  bool
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name:          "returns own profile",
			authenticated: true,
			mockSetup: func(m *mocks.MockUserService) {
				m.GetProfileFunc = func(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
					return &models.User{ID: userID, Email: "ada@example.com"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "deleted account",
			authenticated: true,
			mockSetup: func(m *mocks.MockUserService) {
				m.GetProfileFunc = func(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unauthenticated",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			router := gin.New()
			handlers := []gin.HandlerFunc{NewUserHandler(mockService).GetProfile}
			if tt.authenticated {
				handlers = append([]gin.HandlerFunc{asActor(testStudent)}, handlers...)
			}
			router.GET("/user/me", handlers...)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/me", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	t.Run("passes only the sent fields", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			UpdateProfileFunc: func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
				assert.Nil(t, req.FirstName)
				require.NotNil(t, req.About)
				return &models.User{ID: userID, About: *req.About}, nil
			},
		}

		router := gin.New()
		router.PUT("/user/update", asActor(testStudent), NewUserHandler(mockService).UpdateProfile)

		req := httptest.NewRequest(http.MethodPut, "/user/update", jsonBody(t, map[string]string{"about": "Hello"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a malformed date of birth", func(t *testing.T) {
		router := gin.New()
		router.PUT("/user/update", asActor(testStudent), NewUserHandler(&mocks.MockUserService{}).UpdateProfile)

		req := httptest.NewRequest(http.MethodPut, "/user/update", jsonBody(t, map[string]string{"dateOfBirth": "12/10/1990"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_UpdateDisplayPicture(t *testing.T) {
	tests := []struct {
		name        string
		withFile    bool
		expectImage bool
	}{
		{name: "forwards the uploaded image", withFile: true, expectImage: true},
		{name: "forwards a missing image as nil", withFile: false, expectImage: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received *multipart.FileHeader
			mockService := &mocks.MockUserService{
				UpdateDisplayPictureFunc: func(ctx context.Context, userID primitive.ObjectID, image *multipart.FileHeader) (*models.User, error) {
					received = image
					if image == nil {
						return nil, apperrors.Validation("displayPicture is required")
					}
					return &models.User{ID: userID, ImageURL: "http://cdn/avatars/a.webp"}, nil
				},
			}

			router := gin.New()
			router.PUT("/user/display-picture", asActor(testStudent), NewUserHandler(mockService).UpdateDisplayPicture)

			fileField := ""
			if tt.withFile {
				fileField = displayPictureField
			}
			body, contentType := multipartBody(t, nil, fileField)
			req := httptest.NewRequest(http.MethodPut, "/user/display-picture", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if tt.expectImage {
				assert.Equal(t, http.StatusOK, w.Code)
				require.NotNil(t, received)
				assert.Equal(t, "upload.bin", received.Filename)
			} else {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Nil(t, received)
			}
		})
	}
}

func TestUserHandler_GetEnrolledCourses(t *testing.T) {
	mockService := &mocks.MockUserService{
		GetEnrolledCoursesFunc: func(ctx context.Context, userID primitive.ObjectID) ([]models.EnrolledCourse, error) {
			return []models.EnrolledCourse{{TotalDuration: "1:45", ProgressPercentage: 50}}, nil
		},
	}

	router := gin.New()
	router.GET("/user/enrolled-courses", asActor(testStudent), NewUserHandler(mockService).GetEnrolledCourses)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/enrolled-courses", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "1:45", data[0].(map[string]any)["totalDuration"])
}
