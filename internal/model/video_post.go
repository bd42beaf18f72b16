package model

import "time"

// VideoPost is a student's webcam recording for a video_post block.
// VideoURL and ThumbnailURL are durable storage references, written only
// after the upload has completed.
// swagger:model VideoPost
type VideoPost struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	BlockID      string    `gorm:"uniqueIndex:idx_videopost_block_user;type:varchar(36);not null" json:"blockId"`
	UserID       uint      `gorm:"uniqueIndex:idx_videopost_block_user;not null" json:"userId"`
	VideoURL     string    `gorm:"size:500;not null" json:"videoUrl"`
	ThumbnailURL string    `gorm:"size:500" json:"thumbnailUrl"`
}

func (VideoPost) TableName() string {
	return "video_posts"
}
