package handler

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctranslate/internal/domain"
	"doctranslate/internal/service"
)

// CredentialHeader carries the caller's provider API key on translate calls.
const CredentialHeader = "X-API-Key"

// TranslationHandler handles translate and download endpoints.
type TranslationHandler struct {
	translationService service.TranslationService
}

// NewTranslationHandler creates a new TranslationHandler.
func NewTranslationHandler(translationService service.TranslationService) *TranslationHandler {
	return &TranslationHandler{translationService: translationService}
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language" binding:"required"`
	FileName       string `json:"file_name"`
}

type translateResponse struct {
	*domain.TranslationResult
	DownloadName string `json:"download_name,omitempty"`
}

type downloadRequest struct {
	Text           string `json:"text"`
	FileName       string `json:"file_name"`
	Format         string `json:"format"`
	TargetLanguage string `json:"target_language"`
}

// Translate handles POST /api/v1/translations
// The service decides whether an empty credential is acceptable for the
// configured provider.
func (h *TranslationHandler) Translate(c *gin.Context) {
	credential := c.GetHeader(CredentialHeader)

	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text and target_language are required")
		return
	}

	result, err := h.translationService.Translate(c.Request.Context(), service.TranslateInput{
		Text:           req.Text,
		TargetLanguage: req.TargetLanguage,
		Credential:     credential,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	resp := translateResponse{TranslationResult: result}
	if req.FileName != "" {
		resp.DownloadName = domain.DownloadName(req.FileName)
	}
	RespondOK(c, resp)
}

// Download handles POST /api/v1/translations/download and returns the
// translation as an attachment named translated_<file_name>.
func (h *TranslationHandler) Download(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid download request")
		return
	}

	out, err := h.translationService.Download(c.Request.Context(), service.DownloadInput{
		Text:           req.Text,
		FileName:       req.FileName,
		Format:         req.Format,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": out.FileName}))
	if out.ContentLanguage != "" {
		c.Header("Content-Language", out.ContentLanguage)
	}
	if out.ArchiveURL != "" {
		c.Header("X-Download-URL", out.ArchiveURL)
	}
	c.Data(http.StatusOK, out.ContentType, out.Content)
}
