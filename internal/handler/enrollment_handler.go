package handler

import (
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// EnrollmentHandler handles direct enrollment and lesson progress.
type EnrollmentHandler struct {
	enrollments service.EnrollmentServicer
	progress    service.ProgressServicer
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollments service.EnrollmentServicer, progress service.ProgressServicer) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, progress: progress}
}

// Enroll godoc
// @Summary      Enroll in a course
// @Description  Enroll the calling student in a free published course. Paid courses go through /payment/capture.
// @Tags         enrollment
// @Accept       json
// @Produce      json
// @Param        request  body      models.EnrollRequest  true  "Course"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /course/buy [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.enrollments.Enroll(c.Request.Context(), actor.ID, req.CourseID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "enrolled"})
}

// MarkLectureComplete godoc
// @Summary      Complete a lesson
// @Description  Record a lesson as completed. Completing the same lesson twice is a conflict.
// @Tags         enrollment
// @Accept       json
// @Produce      json
// @Param        request  body      models.MarkLectureRequest  true  "Course and lesson"
// @Success      200      {object}  response.Response{data=models.CourseProgress}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /course/progress [post]
func (h *EnrollmentHandler) MarkLectureComplete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.MarkLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	progress, err := h.progress.MarkLectureComplete(c.Request.Context(), actor, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, progress)
}
