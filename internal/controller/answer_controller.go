package controller

import (
	"coursecraft_backend/internal/service"
	"coursecraft_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: answerService}
}

type AnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

// SubmitAnswer godoc
// @Summary Submit or replace the caller's answer for a block
// @Description Keyed on (user, block); the latest write wins
// @Tags answers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Param request body AnswerRequest true "Answer text"
// @Success 200 {object} util.Response{data=model.Answer}
// @Failure 400 {object} util.Response
// @Router /api/blocks/{id}/answer [put]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	answer, err := c.AnswerService.Submit(claims.UserID, ctx.Param("id"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidBlockType):
			util.BadRequest(ctx, "block does not accept answers")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, answer)
}

// GetOwnAnswer godoc
// @Summary The caller's stored answer for a block
// @Tags answers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Success 200 {object} util.Response{data=model.Answer}
// @Failure 404 {object} util.Response
// @Router /api/blocks/{id}/answer [get]
func (c *AnswerController) GetOwnAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	answer, err := c.AnswerService.GetOwn(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// ListAnswers godoc
// @Summary Every student answer for a block (teacher/admin)
// @Tags answers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Success 200 {object} util.Response{data=[]model.Answer}
// @Router /api/blocks/{id}/answers [get]
func (c *AnswerController) ListAnswers(ctx *gin.Context) {
	answers, err := c.AnswerService.ListByBlock(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}
