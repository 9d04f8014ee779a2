package handler

import (
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service service.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service service.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Category}
// @Failure      500  {object}  response.Response
// @Router       /category [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, categories)
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateCategoryRequest  true  "Category"
// @Success      201      {object}  response.Response{data=models.Category}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /category [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, category)
}
