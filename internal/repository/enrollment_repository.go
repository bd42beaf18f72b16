package repository

import (
	"coursecraft_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Create is idempotent: enrolling twice in the same course is a no-op.
func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(enrollment).Error
}

func (r *EnrollmentRepository) Delete(userID uint, courseID string) error {
	return r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).Delete(&model.Enrollment{}).Error
}

func (r *EnrollmentRepository) Exists(userID uint, courseID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) ListByCourse(courseID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("course_id = ?", courseID).Order("created_at asc").Find(&enrollments).Error
	return enrollments, err
}
