package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctranslate/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	translator port.Translator
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(translator port.Translator) *HealthHandler {
	return &HealthHandler{translator: translator}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. Hosted providers cannot be probed without
// the caller's credential, so only self-hosted backends are checked.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if checker, ok := h.translator.(port.ConnectionChecker); ok {
		if err := checker.CheckConnection(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "translation backend not reachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "provider": h.translator.Name()})
}
