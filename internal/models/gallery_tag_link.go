package models

// GalleryTagLink joins galleries and tags. The link carries no order or weight.
type GalleryTagLink struct {
	ProjectMediaGalleryID uint `gorm:"primaryKey;autoIncrement:false"`
	ProjectGalleryTagID   uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (GalleryTagLink) TableName() string {
	return "project_media_galleries_tag_id_links"
}

// All lists every model in migration order.
func All() []any {
	return []any{&Profile{}, &Tag{}, &Gallery{}, &GalleryTagLink{}}
}
