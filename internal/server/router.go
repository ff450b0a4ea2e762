package server

import (
	"gallery/backend/internal/handler"
	"gallery/backend/internal/logging"
	"gallery/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Registers the generated OpenAPI document with swag.
	_ "gallery/backend/docs"
)

// Store is everything the API reads.
type Store interface {
	handler.GalleryStore
	handler.TagStore
}

// Options wires the router's collaborators.
type Options struct {
	Store   Store
	Health  handler.Pinger
	Metrics bool
	Swagger bool
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(logging.RequestID(), logging.AccessLog(), gin.Recovery())
	if opts.Metrics {
		router.Use(metrics.Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Health check endpoints
	router.GET("/ping", handler.Ping)
	if opts.Health != nil {
		router.GET("/healthz", handler.Healthz(opts.Health))
	}

	galleries := handler.NewGalleryHandler(opts.Store)
	tags := handler.NewTagHandler(opts.Store)

	api := router.Group("/api")
	{
		galleryRoutes := api.Group("/galleries")
		{
			galleryRoutes.GET("", galleries.ListGalleries)
			galleryRoutes.GET("/:id", galleries.GetGallery)
			galleryRoutes.GET("/:id/similar", galleries.GetSimilarGalleries)
		}

		api.GET("/tags", tags.GetTags)
	}

	return router
}
