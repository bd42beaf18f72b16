package controller

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/service"
	"coursecraft_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SectionController struct {
	OutlineService *service.OutlineService
}

func NewSectionController(outlineService *service.OutlineService) *SectionController {
	return &SectionController{OutlineService: outlineService}
}

type SectionRequest struct {
	Title string `json:"title" binding:"required"`
}

// ReorderRequest carries the full new ordering of a sibling list: the id at
// index i ends up at position i.
type ReorderRequest struct {
	Order []string `json:"order" binding:"required"`
}

// ListSections godoc
// @Summary Sections of a course in position order
// @Description Students must be enrolled in the course
// @Tags sections
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response{data=[]model.Section}
// @Failure 403 {object} util.Response
// @Router /api/courses/{id}/sections [get]
func (c *SectionController) ListSections(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	sections, err := c.OutlineService.ListSectionsForUser(ctx.Param("id"), claims.UserID, claims.Role)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, sections)
}

// CreateSection godoc
// @Summary Append a section at the end of a course (teacher/admin)
// @Tags sections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param request body SectionRequest true "Section data"
// @Success 201 {object} util.Response{data=model.Section}
// @Router /api/courses/{id}/sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section := &model.Section{
		CourseID: ctx.Param("id"),
		Title:    req.Title,
	}
	if err := c.OutlineService.CreateSection(ctx.Request.Context(), section); err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Created(ctx, section)
}

// UpdateSection godoc
// @Summary Rename a section (teacher/admin)
// @Tags sections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Section id"
// @Param request body SectionRequest true "Section data"
// @Success 200 {object} util.Response{data=model.Section}
// @Router /api/sections/{id} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	var req SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.OutlineService.UpdateSection(ctx.Request.Context(), ctx.Param("id"), req.Title)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, section)
}

// DeleteSection godoc
// @Summary Delete a section with its pages and blocks (teacher/admin)
// @Tags sections
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Section id"
// @Success 200 {object} util.Response
// @Router /api/sections/{id} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	if err := c.OutlineService.DeleteSection(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ReorderSections godoc
// @Summary Persist a new ordering of a course's sections (teacher/admin)
// @Description The body must list every current section of the course exactly once
// @Tags sections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param request body ReorderRequest true "Full new ordering"
// @Success 200 {object} util.Response{data=[]model.Section}
// @Failure 409 {object} util.Response "Ordering is not a permutation of the current sibling set"
// @Router /api/courses/{id}/sections/reorder [put]
func (c *SectionController) ReorderSections(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courseID := ctx.Param("id")
	if err := c.OutlineService.ReorderSections(ctx.Request.Context(), courseID, req.Order); err != nil {
		respondOutlineError(ctx, err)
		return
	}

	sections, err := c.OutlineService.ListSections(courseID)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, sections)
}
