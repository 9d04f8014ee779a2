package handler

import (
	"coursehub/internal/models"
	"coursehub/internal/service"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// SectionHandler handles HTTP requests for sections and their lessons.
type SectionHandler struct {
	sections    service.SectionServicer
	subSections service.SubSectionServicer
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(sections service.SectionServicer, subSections service.SubSectionServicer) *SectionHandler {
	return &SectionHandler{sections: sections, subSections: subSections}
}

// CreateSection godoc
// @Summary      Add a section
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateSectionRequest  true  "Section"
// @Success      201      {object}  response.Response{data=models.Section}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /section [post]
func (h *SectionHandler) CreateSection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section, err := h.sections.CreateSection(c.Request.Context(), actor, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, section)
}

// UpdateSection godoc
// @Summary      Rename a section
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Section ID"
// @Param        request  body      models.UpdateSectionRequest  true  "New title"
// @Success      200      {object}  response.Response{data=models.Section}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /section/{id} [put]
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section, err := h.sections.UpdateSection(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, section)
}

// DeleteSection godoc
// @Summary      Delete a section
// @Description  Delete a section and every lesson in it
// @Tags         sections
// @Produce      json
// @Param        id        path      string  true  "Section ID"
// @Param        courseId  query     string  true  "Owning course ID"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /section/{id} [delete]
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.DeleteSectionRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.sections.DeleteSection(c.Request.Context(), actor, c.Param("id"), req.CourseID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "section deleted"})
}

// CreateSubSection godoc
// @Summary      Add a lesson
// @Description  Upload a lesson video into a section. The duration is probed from the file when possible.
// @Tags         sections
// @Accept       multipart/form-data
// @Produce      json
// @Param        sectionId     formData  string  true   "Section ID"
// @Param        title         formData  string  true   "Title"
// @Param        description   formData  string  true   "Description"
// @Param        timeDuration  formData  number  false  "Duration in seconds"
// @Param        video         formData  file    true   "Lesson video"
// @Success      201  {object}  response.Response{data=models.SubSection}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /sub-section [post]
func (h *SectionHandler) CreateSubSection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var form models.SubSectionForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	video, err := optionalFile(c, videoField)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lesson, err := h.subSections.CreateSubSection(c.Request.Context(), actor, &form, video)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, lesson)
}

// UpdateSubSection godoc
// @Summary      Edit a lesson
// @Description  Update lesson fields and optionally replace its video
// @Tags         sections
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Lesson ID"
// @Param        title         formData  string  false  "Title"
// @Param        description   formData  string  false  "Description"
// @Param        timeDuration  formData  number  false  "Duration in seconds"
// @Param        video         formData  file    false  "Replacement video"
// @Success      200  {object}  response.Response{data=models.SubSection}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /sub-section/{id} [put]
func (h *SectionHandler) UpdateSubSection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var form models.UpdateSubSectionForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	video, err := optionalFile(c, videoField)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lesson, err := h.subSections.UpdateSubSection(c.Request.Context(), actor, c.Param("id"), &form, video)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, lesson)
}

// DeleteSubSection godoc
// @Summary      Delete a lesson
// @Tags         sections
// @Produce      json
// @Param        id         path      string  true  "Lesson ID"
// @Param        sectionId  query     string  true  "Owning section ID"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Security     BearerAuth
// @Router       /sub-section/{id} [delete]
func (h *SectionHandler) DeleteSubSection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.DeleteSubSectionRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.subSections.DeleteSubSection(c.Request.Context(), actor, c.Param("id"), req.SectionID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "lesson deleted"})
}
