package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gallery/backend/internal/database"
	"gallery/backend/internal/handler"
	"gallery/backend/internal/models"
	"gallery/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pool := database.NewPool(func() (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, database.Migrate(db)
	})
	t.Cleanup(func() { _ = pool.Close() })

	db, err := pool.Conn(context.Background())
	require.NoError(t, err)

	router := NewRouter(Options{
		Store:   store.New(pool),
		Health:  pool,
		Metrics: true,
		Swagger: true,
	})
	return router, db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&models.Profile{ContractorUUID: "u-1", ProfileName: "Asha"}).Error)
	require.NoError(t, db.Create(&[]models.Tag{
		{ID: 1, Slug: "site-progress", TagDisplayName: "Site Progress"},
		{ID: 2, Slug: "exterior", TagDisplayName: "Exterior"},
	}).Error)

	for id := uint(1); id <= 45; id++ {
		g := models.Gallery{
			ID:              id,
			MediaURL:        "https://cdn.example.com/g.jpg",
			CreatedAt:       base.Add(time.Duration(id) * time.Hour),
			CreatedByUserID: "u-1",
		}
		require.NoError(t, db.Omit(clause.Associations).Create(&g).Error)
	}
	require.NoError(t, db.Create(&[]models.GalleryTagLink{
		{ProjectMediaGalleryID: 5, ProjectGalleryTagID: 1},
		{ProjectMediaGalleryID: 5, ProjectGalleryTagID: 2},
		{ProjectMediaGalleryID: 9, ProjectGalleryTagID: 2},
	}).Error)
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGalleryAPI(t *testing.T) {
	router, db := setupRouter(t)
	seed(t, db)

	t.Run("third page", func(t *testing.T) {
		w := get(t, router, "/api/galleries?page=3&limit=20")
		require.Equal(t, http.StatusOK, w.Code)

		var body handler.PaginatedResponse[handler.GalleryCardResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(45), body.Total)
		assert.False(t, body.HasMore)
		require.Len(t, body.Items, 5)
		assert.Equal(t, uint(5), body.Items[0].ID)
		assert.Equal(t, []string{"Exterior", "Site Progress"}, body.Items[0].Tags)
	})

	t.Run("All filter equals no filter", func(t *testing.T) {
		plain := get(t, router, "/api/galleries")
		all := get(t, router, "/api/galleries?tag=All")
		require.Equal(t, http.StatusOK, all.Code)
		assert.JSONEq(t, plain.Body.String(), all.Body.String())
	})

	t.Run("unknown tag", func(t *testing.T) {
		w := get(t, router, "/api/galleries?tag=nope")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[],"page":1,"limit":20,"total":0,"hasMore":false}`, w.Body.String())
	})

	t.Run("similar returns shared-tag gallery once", func(t *testing.T) {
		w := get(t, router, "/api/galleries/5/similar")
		require.Equal(t, http.StatusOK, w.Code)

		var body handler.SimilarGalleriesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Items, 1)
		assert.Equal(t, uint(9), body.Items[0].ID)
	})

	t.Run("similar without tags", func(t *testing.T) {
		w := get(t, router, "/api/galleries/6/similar")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	})

	t.Run("detail", func(t *testing.T) {
		w := get(t, router, "/api/galleries/5")
		require.Equal(t, http.StatusOK, w.Code)

		var body handler.GalleryDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []handler.TagResponse{
			{ID: 2, Tag: "exterior", TagDisplayName: "Exterior"},
			{ID: 1, Tag: "site-progress", TagDisplayName: "Site Progress"},
		}, body.Tags)
	})

	t.Run("detail errors", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, router, "/api/galleries/999").Code)
		assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/galleries/abc").Code)
	})

	t.Run("tags", func(t *testing.T) {
		w := get(t, router, "/api/tags")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tags":[
			{"id":2,"tag":"exterior","tag_display_name":"Exterior"},
			{"id":1,"tag":"site-progress","tag_display_name":"Site Progress"}
		]}`, w.Body.String())
	})
}

func TestStorageFailureIsGeneric(t *testing.T) {
	router, db := setupRouter(t)
	require.NoError(t, db.Migrator().DropTable(&models.GalleryTagLink{}))

	w := get(t, router, "/api/galleries/1/similar")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch similar galleries"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "no such table")
}

func TestOperationalEndpoints(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	assert.JSONEq(t, `{"message":"pong"}`, get(t, router, "/ping").Body.String())

	get(t, router, "/api/tags")
	w = get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `gallery_http_requests_total{method="GET",route="/api/tags",status="200"}`))
	assert.Contains(t, w.Body.String(), `gallery_db_queries_total{operation="list_tags",status="success"}`)

	w = get(t, router, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/galleries/{id}/similar"`)

	w = get(t, router, "/api/galleries/1")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
