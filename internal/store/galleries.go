package store

import (
	"context"
	"fmt"

	"gallery/backend/internal/metrics"
)

// ListParams selects one page of the gallery feed. Page and Limit are
// expected to be normalized by the caller (Page >= 1, Limit >= 1).
type ListParams struct {
	Tag   string
	Page  int
	Limit int
}

// Offset is the number of galleries skipped before the page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// GalleryPage is one page of cards plus the number of galleries matching
// the filter across all pages.
type GalleryPage struct {
	Items []GalleryCard
	Total int64
}

// ListGalleries returns the newest-first page of galleries, optionally
// restricted to those tagged with p.Tag. The total is a distinct count of
// gallery ids under the same filter, independent of paging.
func (s *Store) ListGalleries(ctx context.Context, p ListParams) (page *GalleryPage, err error) {
	done := metrics.ObserveQuery(opListGalleries)
	defer func() { done(err) }()

	db, err := s.db(ctx, opListGalleries)
	if err != nil {
		return nil, err
	}
	filter := taggedWith(p.Tag)

	var rows []galleryRow
	err = galleriesWithProfile(db).
		Select(galleryColumns).
		Scopes(filter).
		Order(newestFirst).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("store: list galleries: %w", err)
	}

	var total int64
	err = galleriesWithProfile(db).
		Scopes(filter).
		Distinct("pmg.id").
		Count(&total).Error
	if err != nil {
		return nil, fmt.Errorf("store: count galleries: %w", err)
	}

	items, err := cards(db, rows)
	if err != nil {
		return nil, fmt.Errorf("store: list gallery tags: %w", err)
	}

	return &GalleryPage{Items: items, Total: total}, nil
}
