package handler

import (
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// AIHandler handles generated course copy.
type AIHandler struct {
	service service.AIServicer
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(service service.AIServicer) *AIHandler {
	return &AIHandler{service: service}
}

// GenerateDescription godoc
// @Summary      Draft a course description
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        request  body      models.GenerateDescriptionRequest  true  "Course name and keywords"
// @Success      200      {object}  response.Response{data=models.GenerateDescriptionResponse}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /course/ai/description [post]
func (h *AIHandler) GenerateDescription(c *gin.Context) {
	var req models.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GenerateDescription(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}
