package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/index.html
var indexHTML []byte

// UIHandler serves the browser form.
type UIHandler struct{}

// NewUIHandler creates a new UIHandler.
func NewUIHandler() *UIHandler {
	return &UIHandler{}
}

// Index handles GET /
func (h *UIHandler) Index(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
