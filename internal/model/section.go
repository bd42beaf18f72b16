package model

// Section is an ordered child of a Course. Position is zero-based and
// contiguous within the course; it is rewritten only by reorder.
// swagger:model Section
type Section struct {
	UUIDBase
	CourseID string `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Position int    `gorm:"not null;default:0" json:"position"`
}

func (Section) TableName() string {
	return "sections"
}
