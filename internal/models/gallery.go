package models

import "time"

// Gallery is a single uploaded media item. Every gallery belongs to exactly
// one Profile through CreatedByUserID.
type Gallery struct {
	ID              uint      `gorm:"primaryKey"`
	MediaURL        string    `gorm:"size:1024;not null"`
	CreatedAt       time.Time `gorm:"not null;index"`
	CreatedByUserID string    `gorm:"size:64;not null;index"`

	Profile Profile `gorm:"foreignKey:CreatedByUserID;references:ContractorUUID"`
}

func (Gallery) TableName() string {
	return "project_media_galleries"
}
