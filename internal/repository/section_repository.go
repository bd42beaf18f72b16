package repository

import (
	"coursecraft_backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

// ListByCourse returns the sections of a course in position order. A course
// without sections yields an empty slice, not an error.
func (r *SectionRepository) ListByCourse(courseID string) ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Where("course_id = ?", courseID).Order("position asc").Find(&sections).Error
	return sections, err
}

// Create appends the section at the tail of its course's sibling list.
func (r *SectionRepository) Create(section *model.Section) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		pos, err := nextPosition(tx, &model.Section{}, "course_id", section.CourseID)
		if err != nil {
			return err
		}
		section.Position = pos
		return tx.Create(section).Error
	})
}

func (r *SectionRepository) FindByID(id string) (*model.Section, error) {
	var section model.Section
	err := r.DB.First(&section, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) Update(section *model.Section) error {
	return r.DB.Save(section).Error
}

// Delete removes the section with its pages and blocks, then compacts the
// remaining sibling positions back to 0..n-1.
func (r *SectionRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var section model.Section
		if err := tx.First(&section, "id = ?", id).Error; err != nil {
			return err
		}

		var pageIDs []string
		if err := tx.Model(&model.Page{}).Where("section_id = ?", id).Pluck("id", &pageIDs).Error; err != nil {
			return err
		}

		if len(pageIDs) > 0 {
			if err := tx.Where("page_id IN ?", pageIDs).Delete(&model.Block{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("section_id = ?", id).Delete(&model.Page{}).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", id).Delete(&model.Section{}).Error; err != nil {
			return err
		}

		return compactSiblings(tx, &model.Section{}, "course_id", section.CourseID)
	})
}

// Reorder persists a full new ordering of the course's sections.
func (r *SectionRepository) Reorder(courseID string, orderedIDs []string) error {
	return reorderSiblings(r.DB, &model.Section{}, "course_id", courseID, orderedIDs)
}
