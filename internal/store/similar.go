package store

import (
	"context"
	"fmt"

	"gallery/backend/internal/metrics"
)

// SimilarGalleries returns up to SimilarLimit other galleries sharing at
// least one tag with id, newest first. Each candidate appears once no
// matter how many tags it shares. A gallery without tags has no similar
// galleries.
func (s *Store) SimilarGalleries(ctx context.Context, id uint) (items []GalleryCard, err error) {
	done := metrics.ObserveQuery(opSimilarGalleries)
	defer func() { done(err) }()

	db, err := s.db(ctx, opSimilarGalleries)
	if err != nil {
		return nil, err
	}

	var tagIDs []uint
	err = db.Table("project_media_galleries_tag_id_links").
		Where("project_media_gallery_id = ?", id).
		Distinct().
		Pluck("project_gallery_tag_id", &tagIDs).Error
	if err != nil {
		return nil, fmt.Errorf("store: similar galleries %d: tags: %w", id, err)
	}
	if len(tagIDs) == 0 {
		return []GalleryCard{}, nil
	}

	// The IN subquery keeps one row per gallery; joining the link table
	// directly would repeat a gallery once per shared tag.
	var rows []galleryRow
	err = galleriesWithProfile(db).
		Select(galleryColumns).
		Where("pmg.id <> ?", id).
		Where(`pmg.id IN (
			SELECT l.project_media_gallery_id
			FROM project_media_galleries_tag_id_links l
			WHERE l.project_gallery_tag_id IN ?)`, tagIDs).
		Order(newestFirst).
		Limit(SimilarLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("store: similar galleries %d: %w", id, err)
	}

	items, err = cards(db, rows)
	if err != nil {
		return nil, fmt.Errorf("store: similar galleries %d: tag names: %w", id, err)
	}
	return items, nil
}
