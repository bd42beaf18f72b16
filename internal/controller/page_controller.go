package controller

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/service"
	"coursecraft_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PageController struct {
	OutlineService *service.OutlineService
}

func NewPageController(outlineService *service.OutlineService) *PageController {
	return &PageController{OutlineService: outlineService}
}

type PageRequest struct {
	Title string `json:"title" binding:"required"`
}

// ListPages godoc
// @Summary Pages of a section in position order
// @Description Students must be enrolled in the owning course
// @Tags pages
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Section id"
// @Success 200 {object} util.Response{data=[]model.Page}
// @Failure 403 {object} util.Response
// @Router /api/sections/{id}/pages [get]
func (c *PageController) ListPages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	pages, err := c.OutlineService.ListPagesForUser(ctx.Param("id"), claims.UserID, claims.Role)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, pages)
}

// CreatePage godoc
// @Summary Append a page at the end of a section (teacher/admin)
// @Tags pages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Section id"
// @Param request body PageRequest true "Page data"
// @Success 201 {object} util.Response{data=model.Page}
// @Router /api/sections/{id}/pages [post]
func (c *PageController) CreatePage(ctx *gin.Context) {
	var req PageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page := &model.Page{
		SectionID: ctx.Param("id"),
		Title:     req.Title,
	}
	if err := c.OutlineService.CreatePage(ctx.Request.Context(), page); err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Created(ctx, page)
}

// UpdatePage godoc
// @Summary Rename a page (teacher/admin)
// @Tags pages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Page id"
// @Param request body PageRequest true "Page data"
// @Success 200 {object} util.Response{data=model.Page}
// @Router /api/pages/{id} [put]
func (c *PageController) UpdatePage(ctx *gin.Context) {
	var req PageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page, err := c.OutlineService.UpdatePage(ctx.Request.Context(), ctx.Param("id"), req.Title)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, page)
}

// DeletePage godoc
// @Summary Delete a page with its blocks (teacher/admin)
// @Tags pages
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Page id"
// @Success 200 {object} util.Response
// @Router /api/pages/{id} [delete]
func (c *PageController) DeletePage(ctx *gin.Context) {
	if err := c.OutlineService.DeletePage(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ReorderPages godoc
// @Summary Persist a new ordering of a section's pages (teacher/admin)
// @Tags pages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Section id"
// @Param request body ReorderRequest true "Full new ordering"
// @Success 200 {object} util.Response{data=[]model.Page}
// @Failure 409 {object} util.Response "Ordering is not a permutation of the current sibling set"
// @Router /api/sections/{id}/pages/reorder [put]
func (c *PageController) ReorderPages(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sectionID := ctx.Param("id")
	if err := c.OutlineService.ReorderPages(ctx.Request.Context(), sectionID, req.Order); err != nil {
		respondOutlineError(ctx, err)
		return
	}

	pages, err := c.OutlineService.ListPages(sectionID)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, pages)
}
