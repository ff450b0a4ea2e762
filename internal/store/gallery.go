package store

import (
	"context"
	"fmt"
	"time"

	"gallery/backend/internal/metrics"
	"gallery/backend/internal/models"
)

// GalleryDetail is a single gallery with its structured tags.
type GalleryDetail struct {
	ID                 uint
	MediaURL           string
	CreatedAt          time.Time
	ProfileName        string
	ProfilePicture     *string
	TotalPhotoUploaded *int
	Tags               []models.Tag
}

// GetGallery returns the gallery with id and its tags ordered by display
// name, or ErrNotFound.
func (s *Store) GetGallery(ctx context.Context, id uint) (detail *GalleryDetail, err error) {
	done := metrics.ObserveQuery(opGetGallery)
	defer func() { done(err) }()

	db, err := s.db(ctx, opGetGallery)
	if err != nil {
		return nil, err
	}

	var row galleryRow
	res := galleriesWithProfile(db).
		Select(galleryColumns).
		Where("pmg.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, fmt.Errorf("store: get gallery %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	tags := []models.Tag{}
	err = db.Table("project_gallery_tags AS t").
		Select("t.id, t.tag, t.tag_display_name").
		Joins("JOIN project_media_galleries_tag_id_links l ON l.project_gallery_tag_id = t.id").
		Where("l.project_media_gallery_id = ?", id).
		Order("t.tag_display_name ASC").
		Scan(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("store: get gallery %d tags: %w", id, err)
	}

	return &GalleryDetail{
		ID:                 row.ID,
		MediaURL:           row.MediaURL,
		CreatedAt:          row.CreatedAt,
		ProfileName:        row.ProfileName,
		ProfilePicture:     row.ProfilePicture,
		TotalPhotoUploaded: row.TotalPhotoUploaded,
		Tags:               tags,
	}, nil
}
