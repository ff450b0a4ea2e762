package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"gallery/backend/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidID        = "Invalid id"
	msgNotFound         = "Not found"
	msgListGalleries    = "Failed to fetch galleries"
	msgGetGallery       = "Failed to fetch gallery"
	msgSimilarGalleries = "Failed to fetch similar galleries"
)

var errInvalidID = errors.New("invalid id")

// GalleryStore is the query layer used by GalleryHandler.
type GalleryStore interface {
	ListGalleries(ctx context.Context, p store.ListParams) (*store.GalleryPage, error)
	GetGallery(ctx context.Context, id uint) (*store.GalleryDetail, error)
	SimilarGalleries(ctx context.Context, id uint) ([]store.GalleryCard, error)
}

type GalleryHandler struct {
	store GalleryStore
}

func NewGalleryHandler(s GalleryStore) *GalleryHandler {
	return &GalleryHandler{store: s}
}

// parseGalleryID accepts any finite number. matchable is false for numbers
// no gallery id can equal (negative or fractional); those are valid input
// that simply matches nothing.
func parseGalleryID(raw string) (id uint, matchable bool, err error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, errInvalidID
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxUint32 {
		return 0, false, nil
	}
	return uint(f), true, nil
}

// ListGalleries godoc
// @Summary      List galleries
// @Description  Returns a newest-first page of galleries, optionally restricted to one tag slug.
// @Tags         galleries
// @Produce      json
// @Param        tag    query     string  false  "Tag slug; \"all\" or empty disables filtering"
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page (1-50)" default(20)
// @Success      200  {object}  PaginatedGalleryResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /galleries [get]
func (h *GalleryHandler) ListGalleries(c *gin.Context) {
	params := store.ListParams{
		Tag:   c.Query("tag"),
		Page:  parsePage(c.Query("page")),
		Limit: parseLimit(c.Query("limit")),
	}

	page, err := h.store.ListGalleries(c.Request.Context(), params)
	if err != nil {
		abortWithStorageError(c, err, msgListGalleries)
		return
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(newGalleryCardResponses(page.Items), page.Total, params.Page, params.Limit))
}

// GetGallery godoc
// @Summary      Get a gallery
// @Description  Returns a single gallery with its uploader profile and tags ordered by display name.
// @Tags         galleries
// @Produce      json
// @Param        id   path      int  true  "Gallery ID"
// @Success      200  {object}  GalleryDetailResponse
// @Failure      400  {object}  ErrorResponse "Invalid id"
// @Failure      404  {object}  ErrorResponse "Not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /galleries/{id} [get]
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	id, matchable, err := parseGalleryID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidID})
		return
	}
	if !matchable {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNotFound})
		return
	}

	detail, err := h.store.GetGallery(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNotFound})
		return
	}
	if err != nil {
		abortWithStorageError(c, err, msgGetGallery)
		return
	}

	c.JSON(http.StatusOK, newGalleryDetailResponse(*detail))
}

// GetSimilarGalleries godoc
// @Summary      List similar galleries
// @Description  Returns up to 10 other galleries sharing at least one tag, newest first. A gallery without tags has none.
// @Tags         galleries
// @Produce      json
// @Param        id   path      int  true  "Gallery ID"
// @Success      200  {object}  SimilarGalleriesResponse
// @Failure      400  {object}  ErrorResponse "Invalid id"
// @Failure      500  {object}  ErrorResponse
// @Router       /galleries/{id}/similar [get]
func (h *GalleryHandler) GetSimilarGalleries(c *gin.Context) {
	id, matchable, err := parseGalleryID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidID})
		return
	}
	if !matchable {
		c.JSON(http.StatusOK, SimilarGalleriesResponse{Items: []GalleryCardResponse{}})
		return
	}

	items, err := h.store.SimilarGalleries(c.Request.Context(), id)
	if err != nil {
		abortWithStorageError(c, err, msgSimilarGalleries)
		return
	}

	c.JSON(http.StatusOK, SimilarGalleriesResponse{Items: newGalleryCardResponses(items)})
}
