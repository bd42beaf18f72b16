package controller

import (
	"coursecraft_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondOutlineError maps hierarchy-store errors onto the response
// envelope: missing rows are 404, a failed enrollment gate is 403, a
// rejected reorder permutation is 409, block-shape violations are 400,
// everything else is a logged 500.
func respondOutlineError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNotEnrolled):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrReorderConflict):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidBlockType), errors.Is(err, util.ErrOptionsNotChoice):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
