package handler

import (
	"context"
	"net/http"

	"gallery/backend/internal/models"

	"github.com/gin-gonic/gin"
)

const msgListTags = "Failed to fetch tags"

// TagStore is the query layer used by TagHandler.
type TagStore interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
}

type TagHandler struct {
	store TagStore
}

func NewTagHandler(s TagStore) *TagHandler {
	return &TagHandler{store: s}
}

// GetTags godoc
// @Summary      Get all tags
// @Description  Retrieves the whole tag catalog ordered by display name.
// @Tags         tags
// @Produce      json
// @Success      200  {object}  TagListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tags [get]
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.store.ListTags(c.Request.Context())
	if err != nil {
		abortWithStorageError(c, err, msgListTags)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, TagListResponse{Tags: response})
}
