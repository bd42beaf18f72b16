package repository

import (
	"coursecraft_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("created_at asc").Find(&courses).Error
	return courses, err
}

// FindEnrolledByUser returns the courses a student can see.
func (r *CourseRepository) FindEnrolledByUser(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Order("courses.created_at asc").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// Delete removes the course and its whole subtree. The schema has no
// FK-level cascade, so descendants are deleted explicitly in one
// transaction.
func (r *CourseRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var sectionIDs []string
		if err := tx.Model(&model.Section{}).Where("course_id = ?", id).Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}

		if len(sectionIDs) > 0 {
			var pageIDs []string
			if err := tx.Model(&model.Page{}).Where("section_id IN ?", sectionIDs).Pluck("id", &pageIDs).Error; err != nil {
				return err
			}

			if len(pageIDs) > 0 {
				if err := tx.Where("page_id IN ?", pageIDs).Delete(&model.Block{}).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("section_id IN ?", sectionIDs).Delete(&model.Page{}).Error; err != nil {
				return err
			}

			if err := tx.Where("course_id = ?", id).Delete(&model.Section{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("course_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&model.Course{}).Error
	})
}
