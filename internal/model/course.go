package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	OwnerID     uint   `gorm:"index;not null" json:"ownerId"`
}

func (Course) TableName() string {
	return "courses"
}
