package models

// Tag is a flat gallery category (e.g. "site-progress" shown as "Site Progress").
type Tag struct {
	ID             uint   `gorm:"primaryKey"`
	Slug           string `gorm:"column:tag;size:100;not null;index"`
	TagDisplayName string `gorm:"size:255;not null"`
}

func (Tag) TableName() string {
	return "project_gallery_tags"
}
