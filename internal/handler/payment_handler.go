package handler

import (
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout and gateway callbacks.
type PaymentHandler struct {
	service service.PaymentServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service service.PaymentServicer) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Capture godoc
// @Summary      Start checkout
// @Description  Create an order for the listed courses and open a payment session. Free orders enroll immediately.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      models.CapturePaymentRequest  true  "Courses to buy"
// @Success      200      {object}  response.Response{data=models.CapturePaymentResponse}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /payment/capture [post]
func (h *PaymentHandler) Capture(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.CapturePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Capture(c.Request.Context(), actor, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// Notification godoc
// @Summary      Payment gateway callback
// @Description  Signed transaction status update from the gateway
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      models.PaymentNotification  true  "Notification"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /payment/notification [post]
func (h *PaymentHandler) Notification(c *gin.Context) {
	var n models.PaymentNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.HandleNotification(c.Request.Context(), &n); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "ok"})
}
