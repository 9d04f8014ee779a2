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

func courseFormFields(categoryID string) map[string][]string {
	return map[string][]string{
		"courseName":        {"MongoDB for Go developers"},
		"courseDescription": {"Learn the driver"},
		"whatYouWillLearn":  {"CRUD", "Aggregations"},
		"price":             {"1000"},
		"language":          {"English"},
		"tags":              {"go", "mongodb"},
		"instructions":      {"Know Go"},
		"categoryId":        {categoryID},
	}
}

func TestCourseHandler_CreateCourse(t *testing.T) {
	categoryID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		fields         map[string][]string
		fileField      string
		mockSetup      func(*testing.T, *mocks.MockCourseService)
		expectedStatus int
	}{
		{
			name:      "creates from multipart form",
			fields:    courseFormFields(categoryID),
			fileField: thumbnailField,
			mockSetup: func(t *testing.T, m *mocks.MockCourseService) {
				m.CreateCourseFunc = func(ctx context.Context, actor models.Actor, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
					assert.Equal(t, testInstructor, actor)
					assert.Equal(t, []string{"CRUD", "Aggregations"}, form.WhatYouWillLearn)
					require.NotNil(t, form.Price)
					assert.Equal(t, 1000.0, *form.Price)
					assert.NotNil(t, thumbnail)
					return &models.Course{ID: primitive.NewObjectID(), CourseName: form.CourseName, Status: models.CourseDraft}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "negative price",
			fields: func() map[string][]string {
				f := courseFormFields(categoryID)
				f["price"] = []string{"-1"}
				return f
			}(),
			fileField:      thumbnailField,
			mockSetup:      func(*testing.T, *mocks.MockCourseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "infinite price",
			fields: func() map[string][]string {
				f := courseFormFields(categoryID)
				f["price"] = []string{"+Inf"}
				return f
			}(),
			fileField:      thumbnailField,
			mockSetup:      func(*testing.T, *mocks.MockCourseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "NaN price",
			fields: func() map[string][]string {
				f := courseFormFields(categoryID)
				f["price"] = []string{"NaN"}
				return f
			}(),
			fileField:      thumbnailField,
			mockSetup:      func(*testing.T, *mocks.MockCourseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad status value",
			fields: func() map[string][]string {
				f := courseFormFields(categoryID)
				f["status"] = []string{"Archived"}
				return f
			}(),
			fileField:      thumbnailField,
			mockSetup:      func(*testing.T, *mocks.MockCourseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing thumbnail is reported by the service",
			fields: courseFormFields(categoryID),
			mockSetup: func(t *testing.T, m *mocks.MockCourseService) {
				m.CreateCourseFunc = func(ctx context.Context, actor models.Actor, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
					assert.Nil(t, thumbnail)
					return nil, apperrors.ErrThumbnailRequired
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "unknown category",
			fields:    courseFormFields(categoryID),
			fileField: thumbnailField,
			mockSetup: func(t *testing.T, m *mocks.MockCourseService) {
				m.CreateCourseFunc = func(ctx context.Context, actor models.Actor, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
					return nil, apperrors.ErrCategoryNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockCourseService{}
			tt.mockSetup(t, mockService)

			router := gin.New()
			router.POST("/course", asActor(testInstructor), NewCourseHandler(mockService).CreateCourse)

			body, contentType := multipartBody(t, tt.fields, tt.fileField)
			req := httptest.NewRequest(http.MethodPost, "/course", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCourseHandler_EditAndDelete(t *testing.T) {
	courseID := primitive.NewObjectID().Hex()

	t.Run("edit without new thumbnail", func(t *testing.T) {
		mockService := &mocks.MockCourseService{
			EditCourseFunc: func(ctx context.Context, actor models.Actor, id string, form *models.CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
				assert.Equal(t, courseID, id)
				assert.Nil(t, thumbnail)
				return &models.Course{CourseName: form.CourseName}, nil
			},
		}

		router := gin.New()
		router.PUT("/course/:id", asActor(testInstructor), NewCourseHandler(mockService).EditCourse)

		body, contentType := multipartBody(t, courseFormFields(primitive.NewObjectID().Hex()), "")
		req := httptest.NewRequest(http.MethodPut, "/course/"+courseID, body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete by a non-owner", func(t *testing.T) {
		mockService := &mocks.MockCourseService{
			DeleteCourseFunc: func(ctx context.Context, actor models.Actor, id string) error {
				return apperrors.ErrForbidden
			},
		}

		router := gin.New()
		router.DELETE("/course/:id", asActor(testInstructor), NewCourseHandler(mockService).DeleteCourse)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/course/"+courseID, nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCourseHandler_ListCourses(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		check          func(*testing.T, models.CatalogQuery)
	}{
		{
			name:           "binds filters",
			query:          "?page=2&limit=5&search=go&minPrice=10&maxPrice=100&sort=price-low",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, q models.CatalogQuery) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 5, q.Limit)
				assert.Equal(t, "go", q.Search)
				require.NotNil(t, q.MinPrice)
				assert.Equal(t, 10.0, *q.MinPrice)
				assert.Equal(t, models.SortPriceLow, q.Sort)
			},
		},
		{
			name:           "unknown sort",
			query:          "?sort=popular",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative price",
			query:          "?minPrice=-5",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockCourseService{
				ListCoursesFunc: func(ctx context.Context, query models.CatalogQuery) (*models.CourseListResponse, error) {
					if tt.check != nil {
						tt.check(t, query)
					}
					return models.NewCourseListResponse(nil, 0, 1, 12), nil
				},
			}

			router := gin.New()
			router.GET("/course", NewCourseHandler(mockService).ListCourses)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/course"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCourseHandler_GetCourse(t *testing.T) {
	courseID := primitive.NewObjectID().Hex()

	t.Run("anonymous viewers get a zero actor", func(t *testing.T) {
		mockService := &mocks.MockCourseService{
			GetCourseDetailFunc: func(ctx context.Context, viewer models.Actor, id string) (*models.CourseDetail, error) {
				assert.True(t, viewer.ID.IsZero())
				return &models.CourseDetail{TotalDuration: "1:45"}, nil
			},
		}

		router := gin.New()
		router.GET("/course/:id", NewCourseHandler(mockService).GetCourse)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/course/"+courseID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("signed-in viewers are passed through", func(t *testing.T) {
		mockService := &mocks.MockCourseService{
			GetCourseDetailFunc: func(ctx context.Context, viewer models.Actor, id string) (*models.CourseDetail, error) {
				assert.Equal(t, testInstructor, viewer)
				return nil, apperrors.ErrCourseNotFound
			},
		}

		router := gin.New()
		router.GET("/course/:id", asActor(testInstructor), NewCourseHandler(mockService).GetCourse)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/course/"+courseID, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCourseHandler_GetCourseContent(t *testing.T) {
	mockService := &mocks.MockCourseService{
		GetCourseContentFunc: func(ctx context.Context, actor models.Actor, id string) (*models.CourseContentView, error) {
			return nil, apperrors.ErrForbidden
		},
	}

	router := gin.New()
	router.GET("/course/:id/content", asActor(testStudent), NewCourseHandler(mockService).GetCourseContent)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/course/"+primitive.NewObjectID().Hex()+"/content", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCourseHandler_CategoryAndInstructorReads(t *testing.T) {
	mockService := &mocks.MockCourseService{
		CoursesByCategoryFunc: func(ctx context.Context, categoryID string) (*models.CategoryCourses, error) {
			return &models.CategoryCourses{Category: models.Category{Name: "Databases"}}, nil
		},
		ListInstructorCoursesFunc: func(ctx context.Context, actor models.Actor, query models.CatalogQuery) (*models.CourseListResponse, error) {
			assert.Equal(t, models.CourseDraft, models.CourseStatus(query.Status))
			return models.NewCourseListResponse(nil, 0, 1, 12), nil
		},
		InstructorStatsFunc: func(ctx context.Context, instructorID string) ([]models.InstructorCourseStats, error) {
			assert.Equal(t, testInstructor.ID.Hex(), instructorID)
			return []models.InstructorCourseStats{{CourseName: "Go", RevenueGenerated: 2000}}, nil
		},
	}
	h := NewCourseHandler(mockService)

	router := gin.New()
	router.GET("/course/category/:categoryId", h.CoursesByCategory)
	router.GET("/course/getInstructorCourses", asActor(testInstructor), h.InstructorCourses)
	router.GET("/course/instructor/stats", asActor(testInstructor), h.InstructorStats)

	for _, path := range []string{
		"/course/category/" + primitive.NewObjectID().Hex(),
		"/course/getInstructorCourses?status=Draft",
		"/course/instructor/stats",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
