package model

import "time"

// Enrollment rows are hard-deleted on unenroll so the unique key can be
// re-inserted later.
// swagger:model Enrollment
type Enrollment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"userId"`
	CourseID  string    `gorm:"uniqueIndex:idx_enrollment_user_course;type:varchar(36);not null" json:"courseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
