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
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReviewHandler_CreateReview(t *testing.T) {
	courseID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		body           any
		err            error
		expectedStatus int
	}{
		{"created", models.CreateReviewRequest{CourseID: courseID, Rating: 5, Review: "Great"}, nil, http.StatusCreated},
		{"rating out of range", models.CreateReviewRequest{CourseID: courseID, Rating: 6, Review: "Great"}, nil, http.StatusBadRequest},
		{"second review", models.CreateReviewRequest{CourseID: courseID, Rating: 4, Review: "Again"}, apperrors.ErrAlreadyReviewed, http.StatusConflict},
		{"not enrolled", models.CreateReviewRequest{CourseID: courseID, Rating: 4, Review: "Hm"}, apperrors.ErrNotEnrolled, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockReviewService{
				CreateReviewFunc: func(ctx context.Context, actor models.Actor, req *models.CreateReviewRequest) (*models.RatingAndReview, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &models.RatingAndReview{UserID: actor.ID, Rating: req.Rating, Review: req.Review}, nil
				},
			}

			router := gin.New()
			router.POST("/rating-review/add", asActor(testStudent), NewReviewHandler(mockService).CreateReview)

			req := httptest.NewRequest(http.MethodPost, "/rating-review/add", jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestReviewHandler_Reads(t *testing.T) {
	var gotLimit int
	mockService := &mocks.MockReviewService{
		AverageRatingFunc: func(ctx context.Context, courseID string) (*models.AverageRating, error) {
			return &models.AverageRating{Message: "no ratings yet"}, nil
		},
		ListReviewsFunc: func(ctx context.Context, limit int) ([]models.RatingAndReview, error) {
			gotLimit = limit
			return []models.RatingAndReview{{Rating: 5}}, nil
		},
	}
	h := NewReviewHandler(mockService)

	router := gin.New()
	router.POST("/rating-review/average/:id", asActor(testStudent), h.AverageRating)
	router.GET("/rating-review", h.ListReviews)

	t.Run("average without ratings", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rating-review/average/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeResponse(t, w)["data"].(map[string]any)
		assert.Equal(t, "no ratings yet", data["message"])
		assert.Equal(t, false, data["hasRatings"])
	})

	t.Run("list with limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rating-review?limit=3", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, gotLimit)
		require.Len(t, decodeResponse(t, w)["data"], 1)
	})
}
