package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"doctranslate/internal/config"
	"doctranslate/internal/handler"
	"doctranslate/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	UI          *handler.UIHandler
	Health      *handler.HealthHandler
	Language    *handler.LanguageHandler
	Document    *handler.DocumentHandler
	Translation *handler.TranslationHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, logger zerolog.Logger, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/", h.UI.Index)

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")
	v1.GET("/languages", h.Language.List)

	documents := v1.Group("/documents")
	if maxBytes := cfg.Upload.MaxBytes(); maxBytes > 0 {
		// Room for the multipart envelope on top of the file itself.
		documents.Use(middleware.BodyLimit(maxBytes + 1<<20))
	}
	documents.POST("/extract", h.Document.Extract)

	translations := v1.Group("/translations")
	translations.POST("", h.Translation.Translate)
	translations.POST("/download", h.Translation.Download)

	return r
}
