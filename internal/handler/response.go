package handler

import (
	"net/http"
	"time"

	"gallery/backend/internal/logging"
	"gallery/backend/internal/models"
	"gallery/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch galleries"`
}

type TagResponse struct {
	ID             uint   `json:"id" example:"3"`
	Tag            string `json:"tag" example:"site-progress"`
	TagDisplayName string `json:"tag_display_name" example:"Site Progress"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:             tag.ID,
		Tag:            tag.Slug,
		TagDisplayName: tag.TagDisplayName,
	}
}

// GalleryCardResponse is the listing view of a gallery.
type GalleryCardResponse struct {
	ID                 uint      `json:"id" example:"5"`
	MediaURL           string    `json:"media_url" example:"https://cdn.example.com/uploads/5.jpg"`
	CreatedAt          time.Time `json:"created_at"`
	ProfileName        string    `json:"profile_name" example:"Asha Builders"`
	ProfilePicture     *string   `json:"profile_picture"`
	TotalPhotoUploaded *int      `json:"total_photo_uploaded"`
	Tags               []string  `json:"tags"`
}

func newGalleryCardResponse(card store.GalleryCard) GalleryCardResponse {
	tags := card.Tags
	if tags == nil {
		tags = []string{}
	}
	return GalleryCardResponse{
		ID:                 card.ID,
		MediaURL:           card.MediaURL,
		CreatedAt:          card.CreatedAt,
		ProfileName:        card.ProfileName,
		ProfilePicture:     card.ProfilePicture,
		TotalPhotoUploaded: card.TotalPhotoUploaded,
		Tags:               tags,
	}
}

func newGalleryCardResponses(cards []store.GalleryCard) []GalleryCardResponse {
	response := make([]GalleryCardResponse, 0, len(cards))
	for _, card := range cards {
		response = append(response, newGalleryCardResponse(card))
	}
	return response
}

// GalleryDetailResponse is a single gallery with structured tags.
type GalleryDetailResponse struct {
	ID                 uint          `json:"id" example:"5"`
	MediaURL           string        `json:"media_url" example:"https://cdn.example.com/uploads/5.jpg"`
	CreatedAt          time.Time     `json:"created_at"`
	ProfileName        string        `json:"profile_name" example:"Asha Builders"`
	ProfilePicture     *string       `json:"profile_picture"`
	TotalPhotoUploaded *int          `json:"total_photo_uploaded"`
	Tags               []TagResponse `json:"tags"`
}

func newGalleryDetailResponse(detail store.GalleryDetail) GalleryDetailResponse {
	tags := make([]TagResponse, 0, len(detail.Tags))
	for _, tag := range detail.Tags {
		tags = append(tags, newTagResponse(tag))
	}
	return GalleryDetailResponse{
		ID:                 detail.ID,
		MediaURL:           detail.MediaURL,
		CreatedAt:          detail.CreatedAt,
		ProfileName:        detail.ProfileName,
		ProfilePicture:     detail.ProfilePicture,
		TotalPhotoUploaded: detail.TotalPhotoUploaded,
		Tags:               tags,
	}
}

// PaginatedGalleryResponse documents PaginatedResponse[GalleryCardResponse] for swag.
type PaginatedGalleryResponse struct {
	Items   []GalleryCardResponse `json:"items"`
	Page    int                   `json:"page" example:"1"`
	Limit   int                   `json:"limit" example:"20"`
	Total   int64                 `json:"total" example:"45"`
	HasMore bool                  `json:"hasMore" example:"true"`
}

type SimilarGalleriesResponse struct {
	Items []GalleryCardResponse `json:"items"`
}

type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// abortWithStorageError logs err with the request id and answers with a
// fixed message. The driver error never reaches the client.
func abortWithStorageError(c *gin.Context, err error, message string) {
	logging.Ctx(c.Request.Context()).Error().
		Err(err).
		Str("route", c.FullPath()).
		Msg(message)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
