package handler

import (
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles HTTP requests for ratings and reviews.
type ReviewHandler struct {
	service service.ReviewServicer
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service service.ReviewServicer) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReview godoc
// @Summary      Rate a course
// @Description  One review per enrolled student and course
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateReviewRequest  true  "Rating and review"
// @Success      201      {object}  response.Response{data=models.RatingAndReview}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /rating-review/add [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), actor, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, review)
}

// AverageRating godoc
// @Summary      Average rating
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response{data=models.AverageRating}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /rating-review/average/{id} [post]
func (h *ReviewHandler) AverageRating(c *gin.Context) {
	avg, err := h.service.AverageRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, avg)
}

// ListReviews godoc
// @Summary      Latest reviews
// @Tags         reviews
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of reviews (0 for all)"
// @Success      200    {object}  response.Response{data=[]models.RatingAndReview}
// @Failure      500    {object}  response.Response
// @Router       /rating-review [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.service.ListReviews(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, reviews)
}
