package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctranslate/internal/domain"
	"doctranslate/internal/service"
)

// DocumentHandler handles document upload and text extraction.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Extract handles POST /api/v1/documents/extract
// Accepts multipart/form-data with a "file" field (PDF, DOCX or TXT) and
// returns the extracted text for preview.
func (h *DocumentHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		if errors.Is(err, http.ErrMissingFile) {
			RespondError(c, http.StatusBadRequest, "MISSING_FILE", "Please upload a document to translate.")
			return
		}
		RespondError(c, http.StatusBadRequest, "INVALID_UPLOAD", "could not read uploaded file")
		return
	}
	defer func() { _ = file.Close() }()

	extracted, err := h.documentService.Extract(c.Request.Context(), service.ExtractInput{
		FileName: header.Filename,
		File:     file,
		Size:     header.Size,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, extracted)
}
