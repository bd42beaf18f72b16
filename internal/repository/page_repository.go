package repository

import (
	"coursecraft_backend/internal/model"

	"gorm.io/gorm"
)

type PageRepository struct {
	DB *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{DB: db}
}

func (r *PageRepository) ListBySection(sectionID string) ([]model.Page, error) {
	var pages []model.Page
	err := r.DB.Where("section_id = ?", sectionID).Order("position asc").Find(&pages).Error
	return pages, err
}

func (r *PageRepository) Create(page *model.Page) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		pos, err := nextPosition(tx, &model.Page{}, "section_id", page.SectionID)
		if err != nil {
			return err
		}
		page.Position = pos
		return tx.Create(page).Error
	})
}

func (r *PageRepository) FindByID(id string) (*model.Page, error) {
	var page model.Page
	err := r.DB.First(&page, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) Update(page *model.Page) error {
	return r.DB.Save(page).Error
}

func (r *PageRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var page model.Page
		if err := tx.First(&page, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("page_id = ?", id).Delete(&model.Block{}).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", id).Delete(&model.Page{}).Error; err != nil {
			return err
		}

		return compactSiblings(tx, &model.Page{}, "section_id", page.SectionID)
	})
}

func (r *PageRepository) Reorder(sectionID string, orderedIDs []string) error {
	return reorderSiblings(r.DB, &model.Page{}, "section_id", sectionID, orderedIDs)
}
