package repository

import (
	"coursecraft_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoPostRepository struct {
	DB *gorm.DB
}

func NewVideoPostRepository(db *gorm.DB) *VideoPostRepository {
	return &VideoPostRepository{DB: db}
}

// Upsert stores the post keyed on (block, user); resubmitting replaces the
// previous clip references.
func (r *VideoPostRepository) Upsert(post *model.VideoPost) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "block_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"video_url", "thumbnail_url"}),
	}).Create(post).Error
}

func (r *VideoPostRepository) FindByBlockAndUser(blockID string, userID uint) (*model.VideoPost, error) {
	var post model.VideoPost
	err := r.DB.Where("block_id = ? AND user_id = ?", blockID, userID).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *VideoPostRepository) ListByBlock(blockID string) ([]model.VideoPost, error) {
	var posts []model.VideoPost
	err := r.DB.Where("block_id = ?", blockID).Order("created_at asc").Find(&posts).Error
	return posts, err
}
