// Package store is the read-only query layer over the gallery schema.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a well-formed id matches no gallery.
var ErrNotFound = errors.New("store: not found")

const (
	// SimilarLimit caps the similar-galleries result.
	SimilarLimit = 10

	// TagAll is the listing filter value that disables tag filtering.
	TagAll = "all"
)

// Query layer operation names, used as metric labels.
const (
	opListGalleries    = "list_galleries"
	opGetGallery       = "get_gallery"
	opSimilarGalleries = "similar_galleries"
	opListTags         = "list_tags"
)

// Operations lists every operation name for metric pre-registration.
var Operations = []string{opListGalleries, opGetGallery, opSimilarGalleries, opListTags}

// Connector hands out the shared connection pool bound to a request context.
type Connector interface {
	Conn(ctx context.Context) (*gorm.DB, error)
}

// Store runs the gallery queries.
type Store struct {
	conn Connector
}

// New returns a Store reading through conn.
func New(conn Connector) *Store {
	return &Store{conn: conn}
}

// GalleryCard is the listing representation of a gallery: tags are display
// names only.
type GalleryCard struct {
	ID                 uint
	MediaURL           string
	CreatedAt          time.Time
	ProfileName        string
	ProfilePicture     *string
	TotalPhotoUploaded *int
	Tags               []string
}

// galleryRow is one gallery joined with its uploader profile.
type galleryRow struct {
	ID                 uint
	MediaURL           string
	CreatedAt          time.Time
	ProfileName        string
	ProfilePicture     *string
	TotalPhotoUploaded *int
}

const galleryColumns = "pmg.id, pmg.media_url, pmg.created_at, dp.profile_name, dp.profile_picture, dp.total_photo_uploaded"

// newestFirst orders galleries by creation time; id breaks ties so that
// pages stay stable.
const newestFirst = "pmg.created_at DESC, pmg.id DESC"

// galleriesWithProfile selects from galleries inner-joined with their owner.
// Galleries without a profile row are never returned or counted.
func galleriesWithProfile(db *gorm.DB) *gorm.DB {
	return db.Table("project_media_galleries AS pmg").
		Joins("JOIN digital_profiles dp ON pmg.created_by_user_id = dp.contractor_uuid")
}

// filtersByTag reports whether slug restricts the listing.
func filtersByTag(slug string) bool {
	return slug != "" && !strings.EqualFold(slug, TagAll)
}

// taggedWith is the tag predicate shared by the listing page and its count.
// The slug comparison follows the store's collation.
func taggedWith(slug string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !filtersByTag(slug) {
			return db
		}
		return db.Where(`pmg.id IN (
			SELECT l.project_media_gallery_id
			FROM project_media_galleries_tag_id_links l
			JOIN project_gallery_tags t ON t.id = l.project_gallery_tag_id
			WHERE t.tag = ?)`, slug)
	}
}

type tagNameRow struct {
	GalleryID      uint
	TagDisplayName string
}

// tagNames returns the alphabetical, deduplicated display names of every
// tag linked to each of ids.
func tagNames(db *gorm.DB, ids []uint) (map[uint][]string, error) {
	names := make(map[uint][]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []tagNameRow
	err := db.Table("project_media_galleries_tag_id_links AS l").
		Select("l.project_media_gallery_id AS gallery_id, t.tag_display_name").
		Joins("JOIN project_gallery_tags t ON t.id = l.project_gallery_tag_id").
		Where("l.project_media_gallery_id IN ?", ids).
		Order("t.tag_display_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]map[string]struct{}, len(ids))
	for _, r := range rows {
		if seen[r.GalleryID] == nil {
			seen[r.GalleryID] = make(map[string]struct{})
		}
		if _, dup := seen[r.GalleryID][r.TagDisplayName]; dup {
			continue
		}
		seen[r.GalleryID][r.TagDisplayName] = struct{}{}
		names[r.GalleryID] = append(names[r.GalleryID], r.TagDisplayName)
	}
	return names, nil
}

// cards attaches tag names to rows, keeping the row order.
func cards(db *gorm.DB, rows []galleryRow) ([]GalleryCard, error) {
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}

	names, err := tagNames(db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]GalleryCard, len(rows))
	for i, r := range rows {
		tags := names[r.ID]
		if tags == nil {
			tags = []string{}
		}
		out[i] = GalleryCard{
			ID:                 r.ID,
			MediaURL:           r.MediaURL,
			CreatedAt:          r.CreatedAt,
			ProfileName:        r.ProfileName,
			ProfilePicture:     r.ProfilePicture,
			TotalPhotoUploaded: r.TotalPhotoUploaded,
			Tags:               tags,
		}
	}
	return out, nil
}

func (s *Store) db(ctx context.Context, op string) (*gorm.DB, error) {
	db, err := s.conn.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: %s: connect: %w", op, err)
	}
	return db, nil
}
