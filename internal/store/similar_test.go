package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarGalleries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.profile("u-1", "Asha")
	f.tag(1, "site-progress", "Site Progress")
	f.tag(2, "exterior", "Exterior")
	f.tag(3, "interior", "Interior")

	f.gallery(5, "u-1", 1, 2)
	f.gallery(9, "u-1", 2)
	f.gallery(7, "u-1", 1, 2, 3)
	f.gallery(8, "u-1", 3)
	f.gallery(11, "u-1")

	s := f.store()

	t.Run("shared tags once per gallery", func(t *testing.T) {
		items, err := s.SimilarGalleries(ctx, 5)
		require.NoError(t, err)

		assert.Equal(t, []uint{9, 7}, cardIDs(items))
		assert.Equal(t, []string{"Exterior"}, items[0].Tags)
		assert.Equal(t, []string{"Exterior", "Interior", "Site Progress"}, items[1].Tags, "full tag set, not only shared tags")
	})

	t.Run("never returns itself", func(t *testing.T) {
		items, err := s.SimilarGalleries(ctx, 7)
		require.NoError(t, err)

		assert.Equal(t, []uint{9, 8, 5}, cardIDs(items))
	})

	t.Run("no tags means no similar galleries", func(t *testing.T) {
		items, err := s.SimilarGalleries(ctx, 11)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("unknown gallery", func(t *testing.T) {
		items, err := s.SimilarGalleries(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestSimilarGalleriesLimitAndOrder(t *testing.T) {
	f := newFixture(t)
	f.profile("u-1", "Asha")
	f.tag(1, "exterior", "Exterior")
	f.tag(2, "roof", "Roof")

	f.gallery(100, "u-1", 1, 2)
	// Creation order deliberately differs from id order.
	for i := uint(1); i <= 15; i++ {
		at := f.base.Add(-time.Duration(i) * time.Hour)
		f.galleryAt(i, "u-1", at, 1, 2)
	}

	items, err := f.store().SimilarGalleries(context.Background(), 100)
	require.NoError(t, err)

	require.Len(t, items, SimilarLimit)
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, cardIDs(items))
	for i := 1; i < len(items); i++ {
		assert.True(t, items[i-1].CreatedAt.After(items[i].CreatedAt))
	}
}
