package repository

import (
	"coursecraft_backend/internal/model"

	"gorm.io/gorm"
)

type BlockRepository struct {
	DB *gorm.DB
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{DB: db}
}

func (r *BlockRepository) ListByPage(pageID string) ([]model.Block, error) {
	var blocks []model.Block
	err := r.DB.Where("page_id = ?", pageID).Order("position asc").Find(&blocks).Error
	return blocks, err
}

func (r *BlockRepository) Create(block *model.Block) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		pos, err := nextPosition(tx, &model.Block{}, "page_id", block.PageID)
		if err != nil {
			return err
		}
		block.Position = pos
		return tx.Create(block).Error
	})
}

func (r *BlockRepository) FindByID(id string) (*model.Block, error) {
	var block model.Block
	err := r.DB.First(&block, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *BlockRepository) Update(block *model.Block) error {
	return r.DB.Save(block).Error
}

func (r *BlockRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var block model.Block
		if err := tx.First(&block, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", id).Delete(&model.Block{}).Error; err != nil {
			return err
		}

		return compactSiblings(tx, &model.Block{}, "page_id", block.PageID)
	})
}

func (r *BlockRepository) Reorder(pageID string, orderedIDs []string) error {
	return reorderSiblings(r.DB, &model.Block{}, "page_id", pageID, orderedIDs)
}
