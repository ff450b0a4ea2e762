package store

import (
	"context"
	"fmt"

	"gallery/backend/internal/metrics"
	"gallery/backend/internal/models"
)

// ListTags returns the whole tag catalog ordered by display name.
func (s *Store) ListTags(ctx context.Context) (tags []models.Tag, err error) {
	done := metrics.ObserveQuery(opListTags)
	defer func() { done(err) }()

	db, err := s.db(ctx, opListTags)
	if err != nil {
		return nil, err
	}

	tags = []models.Tag{}
	if err = db.Order("tag_display_name ASC").Order("id ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("store: list tags: %w", err)
	}
	return tags, nil
}
