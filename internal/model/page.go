package model

// swagger:model Page
type Page struct {
	UUIDBase
	SectionID string `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	Title     string `gorm:"size:200;not null" json:"title"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}

func (Page) TableName() string {
	return "pages"
}
