package controller

import (
	"coursecraft_backend/internal/service"
	"coursecraft_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VideoPostController struct {
	MediaService *service.MediaService
}

func NewVideoPostController(mediaService *service.MediaService) *VideoPostController {
	return &VideoPostController{MediaService: mediaService}
}

// SubmitVideoPost godoc
// @Summary Submit a webcam recording for a video_post block
// @Description Multipart upload: "video" (required) and "thumbnail" (optional still frame; one is extracted from the clip when absent). Resubmission replaces the previous post.
// @Tags video-posts
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Param video formData file true "Recorded clip"
// @Param thumbnail formData file false "Still-frame thumbnail"
// @Success 200 {object} util.Response{data=model.VideoPost}
// @Failure 400 {object} util.Response
// @Router /api/blocks/{id}/video-post [put]
func (c *VideoPostController) SubmitVideoPost(ctx *gin.Context) {
	clip, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	// Optional still frame from the client's capture flow.
	thumbnail, _ := ctx.FormFile("thumbnail")

	claims := util.GetUserFromContext(ctx)
	post, err := c.MediaService.SubmitVideoPost(ctx.Request.Context(), claims.UserID, ctx.Param("id"), clip, thumbnail)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidBlockType):
			util.BadRequest(ctx, "block does not accept video posts")
		case errors.Is(err, util.ErrInvalidVideoExt):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, post)
}

// GetOwnVideoPost godoc
// @Summary The caller's video post for a block
// @Tags video-posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Success 200 {object} util.Response{data=model.VideoPost}
// @Failure 404 {object} util.Response
// @Router /api/blocks/{id}/video-post [get]
func (c *VideoPostController) GetOwnVideoPost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	post, err := c.MediaService.GetOwnPost(ctx.Param("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// ListVideoPosts godoc
// @Summary Every video post for a block (teacher/admin)
// @Tags video-posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Success 200 {object} util.Response{data=[]model.VideoPost}
// @Router /api/blocks/{id}/video-posts [get]
func (c *VideoPostController) ListVideoPosts(ctx *gin.Context) {
	posts, err := c.MediaService.ListByBlock(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, posts)
}
