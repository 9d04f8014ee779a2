package handler

import (
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for profile operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /user/me [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), actor.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Update any subset of the profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdateProfileRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /user/update [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), actor.ID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateDisplayPicture godoc
// @Summary      Replace avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        displayPicture  formData  file  true  "Avatar image"
// @Success      200             {object}  response.Response{data=models.User}
// @Failure      400             {object}  response.Response
// @Failure      401             {object}  response.Response
// @Failure      500             {object}  response.Response
// @Security     BearerAuth
// @Router       /user/display-picture [put]
func (h *UserHandler) UpdateDisplayPicture(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	image, err := optionalFile(c, displayPictureField)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateDisplayPicture(c.Request.Context(), actor.ID, image)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

// GetEnrolledCourses godoc
// @Summary      List enrolled courses
// @Description  The caller's courses with total duration and completion percentage
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.EnrolledCourse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /user/enrolled-courses [get]
func (h *UserHandler) GetEnrolledCourses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	courses, err := h.service.GetEnrolledCourses(c.Request.Context(), actor.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, courses)
}
