package controller

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/service"
	"coursecraft_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BlockController struct {
	OutlineService *service.OutlineService
}

func NewBlockController(outlineService *service.OutlineService) *BlockController {
	return &BlockController{OutlineService: outlineService}
}

type CreateBlockRequest struct {
	Type    string   `json:"type" binding:"required"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Options []string `json:"options"`
}

type UpdateBlockRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Options []string `json:"options"`
}

// ListBlocks godoc
// @Summary Blocks of a page in position order
// @Description Students must be enrolled in the owning course
// @Tags blocks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Page id"
// @Success 200 {object} util.Response{data=[]model.BlockView}
// @Failure 403 {object} util.Response
// @Router /api/pages/{id}/blocks [get]
func (c *BlockController) ListBlocks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	blocks, err := c.OutlineService.ListBlocksForUser(ctx.Param("id"), claims.UserID, claims.Role)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, blocks)
}

// CreateBlock godoc
// @Summary Append a block at the end of a page (teacher/admin)
// @Description Type is one of: heading, text, image, video, question_yes_no, question_multiple_choice, file_upload, video_post. Options are only accepted for question_multiple_choice.
// @Tags blocks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Page id"
// @Param request body CreateBlockRequest true "Block data"
// @Success 201 {object} util.Response{data=model.BlockView}
// @Failure 400 {object} util.Response
// @Router /api/pages/{id}/blocks [post]
func (c *BlockController) CreateBlock(ctx *gin.Context) {
	var req CreateBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	block := &model.Block{
		PageID:  ctx.Param("id"),
		Type:    model.BlockType(req.Type),
		Title:   req.Title,
		Content: req.Content,
	}
	if err := c.OutlineService.CreateBlock(ctx.Request.Context(), block, req.Options); err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Created(ctx, model.NewBlockView(*block))
}

// UpdateBlock godoc
// @Summary Edit a block's title, content or options (teacher/admin)
// @Tags blocks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Param request body UpdateBlockRequest true "Block data"
// @Success 200 {object} util.Response{data=model.BlockView}
// @Router /api/blocks/{id} [put]
func (c *BlockController) UpdateBlock(ctx *gin.Context) {
	var req UpdateBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	block, err := c.OutlineService.UpdateBlock(ctx.Request.Context(), ctx.Param("id"), req.Title, req.Content, req.Options)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, block)
}

// DeleteBlock godoc
// @Summary Delete a block (teacher/admin)
// @Tags blocks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Success 200 {object} util.Response
// @Router /api/blocks/{id} [delete]
func (c *BlockController) DeleteBlock(ctx *gin.Context) {
	if err := c.OutlineService.DeleteBlock(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ReorderBlocks godoc
// @Summary Persist a new ordering of a page's blocks (teacher/admin)
// @Tags blocks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Page id"
// @Param request body ReorderRequest true "Full new ordering"
// @Success 200 {object} util.Response{data=[]model.BlockView}
// @Failure 409 {object} util.Response "Ordering is not a permutation of the current sibling set"
// @Router /api/pages/{id}/blocks/reorder [put]
func (c *BlockController) ReorderBlocks(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pageID := ctx.Param("id")
	if err := c.OutlineService.ReorderBlocks(ctx.Request.Context(), pageID, req.Order); err != nil {
		respondOutlineError(ctx, err)
		return
	}

	blocks, err := c.OutlineService.ListBlocks(pageID)
	if err != nil {
		respondOutlineError(ctx, err)
		return
	}
	util.Success(ctx, blocks)
}
