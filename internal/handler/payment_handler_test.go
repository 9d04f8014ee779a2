package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"
	"coursehub/internal/payment"
	"coursehub/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPaymentHandler_Capture(t *testing.T) {
	courseID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		body           any
		mockSetup      func(*mocks.MockPaymentService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "returns the checkout token",
			body: models.CapturePaymentRequest{CourseIDs: []string{courseID}},
			mockSetup: func(m *mocks.MockPaymentService) {
				m.CaptureFunc = func(ctx context.Context, actor models.Actor, req *models.CapturePaymentRequest) (*models.CapturePaymentResponse, error) {
					return &models.CapturePaymentResponse{OrderID: "ORDER-1", Token: "snap", Amount: 1000}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeResponse(t, w)["data"].(map[string]any)
				assert.Equal(t, "snap", data["token"])
			},
		},
		{
			name:           "empty cart",
			body:           models.CapturePaymentRequest{CourseIDs: []string{}},
			mockSetup:      func(*mocks.MockPaymentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed course id",
			body:           models.CapturePaymentRequest{CourseIDs: []string{"nope"}},
			mockSetup:      func(*mocks.MockPaymentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "gateway down",
			body: models.CapturePaymentRequest{CourseIDs: []string{courseID}},
			mockSetup: func(m *mocks.MockPaymentService) {
				m.CaptureFunc = func(ctx context.Context, actor models.Actor, req *models.CapturePaymentRequest) (*models.CapturePaymentResponse, error) {
					return nil, apperrors.Upstream("create checkout", payment.ErrDisabled)
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockPaymentService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/payment/capture", asActor(testStudent), NewPaymentHandler(mockService).Capture)

			req := httptest.NewRequest(http.MethodPost, "/payment/capture", jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestPaymentHandler_Notification(t *testing.T) {
	valid := models.PaymentNotification{
		OrderID:           "ORDER-1",
		StatusCode:        "200",
		GrossAmount:       "1000.00",
		SignatureKey:      "sig",
		TransactionStatus: "settlement",
	}

	tests := []struct {
		name           string
		body           any
		err            error
		expectedStatus int
	}{
		{"acknowledged", valid, nil, http.StatusOK},
		{"forged", valid, apperrors.ErrInvalidSignature, http.StatusForbidden},
		{"unknown order", valid, apperrors.ErrOrderNotFound, http.StatusNotFound},
		{"enrollment failed", valid, errors.New("boom"), http.StatusInternalServerError},
		{"missing signature", map[string]string{"order_id": "ORDER-1"}, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockPaymentService{
				HandleNotificationFunc: func(ctx context.Context, n *models.PaymentNotification) error {
					return tt.err
				},
			}

			router := gin.New()
			router.POST("/payment/notification", NewPaymentHandler(mockService).Notification)

			req := httptest.NewRequest(http.MethodPost, "/payment/notification", jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
