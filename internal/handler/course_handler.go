package handler

import (
	"coursehub/internal/middleware"
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// CourseHandler handles HTTP requests for courses.
type CourseHandler struct {
	service service.CourseServicer
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(service service.CourseServicer) *CourseHandler {
	return &CourseHandler{service: service}
}

// CreateCourse godoc
// @Summary      Create a course
// @Description  Create a course owned by the calling instructor. Status defaults to Draft.
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Param        courseName         formData  string  true   "Name"
// @Param        courseDescription  formData  string  true   "Description"
// @Param        whatYouWillLearn   formData  []string  true   "Outcomes"  collectionFormat(multi)
// @Param        price              formData  number  true   "Price"
// @Param        language           formData  string  true   "Language"
// @Param        tags               formData  []string  true   "Tags"  collectionFormat(multi)
// @Param        instructions       formData  []string  true   "Prerequisites"  collectionFormat(multi)
// @Param        categoryId         formData  string  true   "Category ID"
// @Param        status             formData  string  false  "Draft or Published"
// @Param        thumbnailImage     formData  file    true   "Thumbnail"
// @Success      201  {object}  response.Response{data=models.Course}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /course [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var form models.CourseForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	thumbnail, err := optionalFile(c, thumbnailField)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), actor, &form, thumbnail)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, course)
}

// EditCourse godoc
// @Summary      Edit a course
// @Description  Replace the editable fields of an owned course. The thumbnail is optional.
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Param        id              path      string  true   "Course ID"
// @Param        courseName      formData  string  true   "Name"
// @Param        categoryId      formData  string  true   "Category ID"
// @Param        thumbnailImage  formData  file    false  "Thumbnail"
// @Success      200  {object}  response.Response{data=models.Course}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /course/{id} [put]
func (h *CourseHandler) EditCourse(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var form models.CourseForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	thumbnail, err := optionalFile(c, thumbnailField)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	course, err := h.service.EditCourse(c.Request.Context(), actor, c.Param("id"), &form, thumbnail)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, course)
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Description  Delete a course with its sections, lessons, reviews and enrollments
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /course/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), actor, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "course deleted"})
}

// ListCourses godoc
// @Summary      Browse the catalog
// @Description  Published courses filtered by search, category and price range
// @Tags         courses
// @Produce      json
// @Param        page      query     int     false  "Page (default 1)"
// @Param        limit     query     int     false  "Items per page (default 12, max 50)"
// @Param        search    query     string  false  "Matches name, description and tags"
// @Param        category  query     string  false  "Category ID"
// @Param        minPrice  query     number  false  "Minimum price"
// @Param        maxPrice  query     number  false  "Maximum price"
// @Param        sort      query     string  false  "newest, oldest, price-low or price-high"
// @Success      200  {object}  response.Response{data=models.CourseListResponse}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /course [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var query models.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListCourses(c.Request.Context(), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// GetCourse godoc
// @Summary      Course detail
// @Description  Populated course tree without video URLs. Drafts are visible to the owner and admins only.
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response{data=models.CourseDetail}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /course/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	viewer, _ := middleware.GetActor(c)

	detail, err := h.service.GetCourseDetail(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, detail)
}

// GetCourseContent godoc
// @Summary      Course content
// @Description  Playable course tree with the caller's progress. Requires enrollment, ownership or admin.
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response{data=models.CourseContentView}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /course/{id}/content [get]
func (h *CourseHandler) GetCourseContent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.service.GetCourseContent(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, view)
}

// CoursesByCategory godoc
// @Summary      Category page
// @Description  Published courses of a category plus platform best sellers
// @Tags         courses
// @Produce      json
// @Param        categoryId  path      string  true  "Category ID"
// @Success      200  {object}  response.Response{data=models.CategoryCourses}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /course/category/{categoryId} [get]
func (h *CourseHandler) CoursesByCategory(c *gin.Context) {
	page, err := h.service.CoursesByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, page)
}

// InstructorCourses godoc
// @Summary      Own courses
// @Description  The calling instructor's courses in every status
// @Tags         courses
// @Produce      json
// @Param        page    query     int     false  "Page (default 1)"
// @Param        limit   query     int     false  "Items per page"
// @Param        status  query     string  false  "Draft or Published"
// @Success      200  {object}  response.Response{data=models.CourseListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /course/getInstructorCourses [get]
func (h *CourseHandler) InstructorCourses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var query models.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListInstructorCourses(c.Request.Context(), actor, query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// InstructorStats godoc
// @Summary      Own revenue
// @Description  Per-course enrollment count and revenue for the calling instructor
// @Tags         courses
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.InstructorCourseStats}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /course/instructor/stats [get]
func (h *CourseHandler) InstructorStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	stats, err := h.service.InstructorStats(c.Request.Context(), actor.ID.Hex())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, stats)
}
