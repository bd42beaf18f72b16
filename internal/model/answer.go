package model

import "time"

// Answer is a student's latest response to a question or upload block.
// One row per (user, block); resubmission overwrites.
// swagger:model Answer
type Answer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"uniqueIndex:idx_answer_user_block;not null" json:"userId"`
	BlockID   string    `gorm:"uniqueIndex:idx_answer_user_block;type:varchar(36);not null" json:"blockId"`
	Text      string    `gorm:"type:text" json:"text"`
}

func (Answer) TableName() string {
	return "answers"
}
