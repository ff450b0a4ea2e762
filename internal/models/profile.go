package models

// Profile is the uploader account that owns galleries.
type Profile struct {
	ContractorUUID     string  `gorm:"column:contractor_uuid;primaryKey;size:64"`
	ProfileName        string  `gorm:"size:255;not null"`
	ProfilePicture     *string `gorm:"size:1024"`
	TotalPhotoUploaded *int
}

func (Profile) TableName() string {
	return "digital_profiles"
}
