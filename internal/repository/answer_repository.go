package repository

import (
	"coursecraft_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// Upsert writes the answer keyed on (user, block); the latest write wins.
func (r *AnswerRepository) Upsert(answer *model.Answer) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "block_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"text"}),
	}).Create(answer).Error
}

func (r *AnswerRepository) FindByUserAndBlock(userID uint, blockID string) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.Where("user_id = ? AND block_id = ?", userID, blockID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// ListByBlock returns every student answer for a block (teacher review).
func (r *AnswerRepository) ListByBlock(blockID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("block_id = ?", blockID).Order("created_at asc").Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) DeleteByBlock(blockID string) error {
	return r.DB.Where("block_id = ?", blockID).Delete(&model.Answer{}).Error
}
