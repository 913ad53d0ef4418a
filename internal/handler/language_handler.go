package handler

import (
	"github.com/gin-gonic/gin"

	"doctranslate/internal/domain"
)

type languageEntry struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// LanguageHandler serves the supported target languages and whether the
// form must ask for an API key.
type LanguageHandler struct {
	credentialRequired bool
}

// NewLanguageHandler creates a new LanguageHandler.
func NewLanguageHandler(credentialRequired bool) *LanguageHandler {
	return &LanguageHandler{credentialRequired: credentialRequired}
}

// List handles GET /api/v1/languages
func (h *LanguageHandler) List(c *gin.Context) {
	entries := make([]languageEntry, 0, len(domain.Languages))
	for _, l := range domain.Languages {
		entries = append(entries, languageEntry{Name: string(l), Tag: l.Tag().String()})
	}
	RespondOK(c, gin.H{
		"languages":           entries,
		"extensions":          domain.SupportedExtensions(),
		"credential_required": h.credentialRequired,
	})
}
