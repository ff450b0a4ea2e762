// Package seed fills an empty gallery schema with demo data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gallery/backend/internal/database"
	"gallery/backend/internal/logging"
	"gallery/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotEmpty is returned when galleries already exist and Force is unset.
var ErrNotEmpty = errors.New("seed: galleries table is not empty")

// Options controls how much demo data is generated.
type Options struct {
	Galleries int
	Profiles  int
	Force     bool
	Rand      *rand.Rand
	Now       time.Time
}

// Result counts what was inserted.
type Result struct {
	Profiles  int
	Tags      int
	Galleries int
	Links     int
}

var demoTags = []models.Tag{
	{Slug: "site-progress", TagDisplayName: "Site Progress"},
	{Slug: "exterior", TagDisplayName: "Exterior"},
	{Slug: "interior", TagDisplayName: "Interior"},
	{Slug: "kitchen", TagDisplayName: "Kitchen"},
	{Slug: "bathroom", TagDisplayName: "Bathroom"},
	{Slug: "landscaping", TagDisplayName: "Landscaping"},
	{Slug: "roofing", TagDisplayName: "Roofing"},
	{Slug: "before-after", TagDisplayName: "Before & After"},
}

var demoNames = []string{
	"Asha Builders", "Northside Renovations", "Blue Pine Carpentry",
	"Keystone Masonry", "Harbor Roofing Co", "Greenline Gardens",
}

// Run migrates the schema and inserts profiles, tags, galleries and random
// tag links in one transaction.
func Run(ctx context.Context, db *gorm.DB, opts Options) (Result, error) {
	var res Result
	if opts.Galleries <= 0 {
		return res, fmt.Errorf("seed: gallery count must be positive, got %d", opts.Galleries)
	}
	if opts.Profiles <= 0 {
		opts.Profiles = len(demoNames)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now().UTC()
	}

	db = db.WithContext(ctx)
	if err := database.Migrate(db); err != nil {
		return res, fmt.Errorf("seed: %w", err)
	}

	var existing int64
	if err := db.Model(&models.Gallery{}).Count(&existing).Error; err != nil {
		return res, fmt.Errorf("seed: count galleries: %w", err)
	}
	if existing > 0 && !opts.Force {
		return res, ErrNotEmpty
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		profiles := make([]models.Profile, opts.Profiles)
		for i := range profiles {
			photos := 0
			profiles[i] = models.Profile{
				ContractorUUID:     uuid.NewString(),
				ProfileName:        demoNames[i%len(demoNames)],
				TotalPhotoUploaded: &photos,
			}
			if i%2 == 0 {
				pic := fmt.Sprintf("https://cdn.example.com/avatars/%d.png", i+1)
				profiles[i].ProfilePicture = &pic
			}
		}

		tags := make([]models.Tag, 0, len(demoTags))
		for _, t := range demoTags {
			var tag models.Tag
			if err := tx.Where(models.Tag{Slug: t.Slug}).
				Attrs(models.Tag{TagDisplayName: t.TagDisplayName}).
				FirstOrCreate(&tag).Error; err != nil {
				return fmt.Errorf("create tag %q: %w", t.Slug, err)
			}
			tags = append(tags, tag)
		}

		galleries := make([]models.Gallery, opts.Galleries)
		for i := range galleries {
			owner := &profiles[opts.Rand.Intn(len(profiles))]
			*owner.TotalPhotoUploaded++
			galleries[i] = models.Gallery{
				MediaURL:        fmt.Sprintf("https://cdn.example.com/uploads/%s.jpg", uuid.NewString()),
				CreatedAt:       opts.Now.Add(-time.Duration(opts.Rand.Intn(90*24)) * time.Hour),
				CreatedByUserID: owner.ContractorUUID,
			}
		}

		if err := tx.Create(&profiles).Error; err != nil {
			return fmt.Errorf("create profiles: %w", err)
		}
		if err := tx.Omit(clause.Associations).CreateInBatches(&galleries, 100).Error; err != nil {
			return fmt.Errorf("create galleries: %w", err)
		}

		var links []models.GalleryTagLink
		for _, g := range galleries {
			// Zero to three distinct tags per gallery.
			for _, idx := range opts.Rand.Perm(len(tags))[:opts.Rand.Intn(4)] {
				links = append(links, models.GalleryTagLink{
					ProjectMediaGalleryID: g.ID,
					ProjectGalleryTagID:   tags[idx].ID,
				})
			}
		}
		if len(links) > 0 {
			if err := tx.CreateInBatches(&links, 200).Error; err != nil {
				return fmt.Errorf("create tag links: %w", err)
			}
		}

		res = Result{Profiles: len(profiles), Tags: len(tags), Galleries: len(galleries), Links: len(links)}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed: %w", err)
	}

	logging.Info().
		Int("profiles", res.Profiles).
		Int("tags", res.Tags).
		Int("galleries", res.Galleries).
		Int("links", res.Links).
		Msg("demo data inserted")
	return res, nil
}
