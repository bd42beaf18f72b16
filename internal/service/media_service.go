package service

import (
	"coursecraft_backend/internal/model"
	"coursecraft_backend/internal/repository"
	"coursecraft_backend/internal/util"
	"coursecraft_backend/pkg/logger"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MediaService handles webcam recording submissions: the clip and its
// thumbnail are pushed through the storage provider and only the durable
// URLs are persisted. A missing thumbnail is extracted from the clip with
// ffmpeg before upload.
type MediaService struct {
	VideoPostRepo  *repository.VideoPostRepository
	BlockRepo      *repository.BlockRepository
	StorageService *StorageService
}

func NewMediaService(videoPostRepo *repository.VideoPostRepository, blockRepo *repository.BlockRepository, storageService *StorageService) *MediaService {
	return &MediaService{
		VideoPostRepo:  videoPostRepo,
		BlockRepo:      blockRepo,
		StorageService: storageService,
	}
}

func (s *MediaService) SubmitVideoPost(ctx context.Context, userID uint, blockID string, clip *multipart.FileHeader, thumbnail *multipart.FileHeader) (*model.VideoPost, error) {
	block, err := s.BlockRepo.FindByID(blockID)
	if err != nil {
		return nil, err
	}
	if block.Type != model.BlockVideoPost {
		return nil, util.ErrInvalidBlockType
	}

	ext := strings.ToLower(filepath.Ext(clip.Filename))
	valid := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			valid = true
			break
		}
	}
	if !valid {
		return nil, util.ErrInvalidVideoExt
	}

	src, err := clip.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeVideo, "application/octet-stream"}); err != nil {
		return nil, fmt.Errorf("invalid clip content: %w", err)
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	stamp := time.Now().Format("20060102150405")
	base := fmt.Sprintf("video_posts/%s_%d_%s", blockID, userID, stamp)

	videoURL, err := s.StorageService.Upload(ctx, base+ext, src, clip.Size, clip.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	thumbURL, err := s.storeThumbnail(ctx, base, clip, thumbnail)
	if err != nil {
		// The clip is durable; a missing thumbnail is not worth failing the
		// submission over.
		logger.Log.Warn("thumbnail not stored", zap.String("block", blockID), zap.Error(err))
		thumbURL = ""
	}

	post := &model.VideoPost{
		BlockID:      blockID,
		UserID:       userID,
		VideoURL:     videoURL,
		ThumbnailURL: thumbURL,
	}
	if err := s.VideoPostRepo.Upsert(post); err != nil {
		return nil, err
	}
	return s.VideoPostRepo.FindByBlockAndUser(blockID, userID)
}

// storeThumbnail uploads the client-captured still when present, otherwise
// spools the clip to a temp file and grabs a frame with ffmpeg.
func (s *MediaService) storeThumbnail(ctx context.Context, base string, clip *multipart.FileHeader, thumbnail *multipart.FileHeader) (string, error) {
	if thumbnail != nil {
		src, err := thumbnail.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		if _, err := util.ValidateMimeType(src, []string{util.MimeImage}); err != nil {
			return "", err
		}
		if seeker, ok := src.(io.Seeker); ok {
			seeker.Seek(0, io.SeekStart)
		}

		ext := strings.ToLower(filepath.Ext(thumbnail.Filename))
		if ext == "" {
			ext = ".jpg"
		}
		return s.StorageService.Upload(ctx, base+"_thumb"+ext, src, thumbnail.Size, thumbnail.Header.Get("Content-Type"))
	}

	tmpDir, err := os.MkdirTemp("", "videopost")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	clipPath := filepath.Join(tmpDir, "clip"+strings.ToLower(filepath.Ext(clip.Filename)))
	if err := spoolMultipart(clip, clipPath); err != nil {
		return "", err
	}

	thumbPath := filepath.Join(tmpDir, "thumb.jpg")
	if err := util.ExtractThumbnail(clipPath, thumbPath, "00:00:01"); err != nil {
		return "", err
	}

	return s.StorageService.UploadFile(ctx, base+"_thumb.jpg", thumbPath, "image/jpeg")
}

func (s *MediaService) GetOwnPost(blockID string, userID uint) (*model.VideoPost, error) {
	return s.VideoPostRepo.FindByBlockAndUser(blockID, userID)
}

func (s *MediaService) ListByBlock(blockID string) ([]model.VideoPost, error) {
	return s.VideoPostRepo.ListByBlock(blockID)
}

func spoolMultipart(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
