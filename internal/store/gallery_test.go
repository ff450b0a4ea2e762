package store

import (
	"context"
	"testing"

	"gallery/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGallery(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.profile("u-1", "Asha")
	siteProgress := f.tag(1, "site-progress", "Site Progress")
	exterior := f.tag(2, "exterior", "Exterior")
	f.tag(3, "interior", "Interior")

	f.gallery(5, "u-1", 1, 2)
	f.gallery(6, "u-1")
	f.gallery(7, "nobody", 1)

	s := f.store()

	t.Run("detail with ordered tags", func(t *testing.T) {
		detail, err := s.GetGallery(ctx, 5)
		require.NoError(t, err)

		assert.Equal(t, uint(5), detail.ID)
		assert.Equal(t, "https://cdn.example.com/uploads/5.jpg", detail.MediaURL)
		assert.Equal(t, "Asha", detail.ProfileName)
		assert.Nil(t, detail.ProfilePicture)
		assert.Equal(t, []models.Tag{exterior, siteProgress}, detail.Tags)
	})

	t.Run("no tags", func(t *testing.T) {
		detail, err := s.GetGallery(ctx, 6)
		require.NoError(t, err)
		assert.NotNil(t, detail.Tags)
		assert.Empty(t, detail.Tags)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.GetGallery(ctx, 404)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("gallery without profile is not found", func(t *testing.T) {
		_, err := s.GetGallery(ctx, 7)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
