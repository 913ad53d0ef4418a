package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"doctranslate/internal/config"
	"doctranslate/internal/domain"
	"doctranslate/internal/port"
)

// ExtractInput is the DTO for a document upload.
type ExtractInput struct {
	FileName string
	File     io.Reader
	Size     int64
}

// DocumentService defines the extraction contract.
type DocumentService interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractedText, error)
}

type documentService struct {
	extractor port.DocumentExtractor
	cfg       *config.UploadConfig
	logger    zerolog.Logger
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(extractor port.DocumentExtractor, cfg *config.UploadConfig, logger zerolog.Logger) DocumentService {
	return &documentService{
		extractor: extractor,
		cfg:       cfg,
		logger:    logger,
	}
}

// Extract reads the upload fully into memory and hands it to the extractor.
// Nothing is written to disk.
func (s *documentService) Extract(ctx context.Context, input ExtractInput) (*domain.ExtractedText, error) {
	if input.File == nil || input.FileName == "" {
		return nil, domain.ErrMissingFile
	}

	if domain.FormatFromFileName(input.FileName) == domain.FormatUnsupported {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, input.FileName)
	}

	maxBytes := s.cfg.MaxBytes()
	if maxBytes > 0 && input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	reader := input.File
	if maxBytes > 0 {
		reader = io.LimitReader(input.File, maxBytes+1)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	s.logger.Info().Str("file_name", input.FileName).Int("bytes", len(content)).
		Msg("documentService.Extract: extracting document")

	return s.extractor.Extract(ctx, domain.UploadedDocument{
		FileName: input.FileName,
		Content:  content,
	})
}
