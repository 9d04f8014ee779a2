package handler

import (
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles platform administration.
type AdminHandler struct {
	admin   service.AdminServicer
	courses service.CourseServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin service.AdminServicer, courses service.CourseServicer) *AdminHandler {
	return &AdminHandler{admin: admin, courses: courses}
}

// Stats godoc
// @Summary      Platform totals
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=models.PlatformStats}
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, stats)
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        page   query     int     false  "Page (default 1)"
// @Param        limit  query     int     false  "Items per page"
// @Param        role   query     string  false  "student, instructor or admin"
// @Success      200    {object}  response.Response{data=models.UserListResponse}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context(), c.Query("role"), queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, users)
}

// ListCourses godoc
// @Summary      List courses in every status
// @Tags         admin
// @Produce      json
// @Param        page    query     int     false  "Page (default 1)"
// @Param        limit   query     int     false  "Items per page"
// @Param        status  query     string  false  "Draft or Published"
// @Param        search  query     string  false  "Search text"
// @Success      200     {object}  response.Response{data=models.CourseListPage}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/courses [get]
func (h *AdminHandler) ListCourses(c *gin.Context) {
	var query models.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	courses, err := h.admin.ListCourses(c.Request.Context(), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, courses)
}

// InstructorStats godoc
// @Summary      Instructor revenue
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Instructor ID"
// @Success      200  {object}  response.Response{data=[]models.InstructorCourseStats}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/instructor/{id}/stats [get]
func (h *AdminHandler) InstructorStats(c *gin.Context) {
	stats, err := h.courses.InstructorStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, stats)
}

// UpdateRole godoc
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdateRoleRequest  true  "User and role"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/update-role [put]
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.admin.UpdateRole(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Delete a user with their reviews, progress and enrollments. Instructors who still own courses are refused.
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/user/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "user deleted"})
}

// DeleteCourse godoc
// @Summary      Remove a course
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/course/{id} [delete]
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.courses.DeleteCourse(c.Request.Context(), actor, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "course deleted"})
}
