// Package extractor reads the plain text out of uploaded PDF, DOCX and TXT documents.
package extractor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"doctranslate/internal/domain"
	"doctranslate/internal/port"
)

// Extractor implements port.DocumentExtractor. It never writes the document
// anywhere; all parsing happens on the in-memory bytes.
type Extractor struct {
	detector port.LanguageDetector
	logger   zerolog.Logger
}

// New creates an Extractor. detector may be nil, in which case no source
// language is reported.
func New(detector port.LanguageDetector, logger zerolog.Logger) *Extractor {
	return &Extractor{detector: detector, logger: logger}
}

// Extract resolves the document format once from the file name and runs the
// matching parser. Unsupported names fail before any parser is touched.
func (e *Extractor) Extract(ctx context.Context, doc domain.UploadedDocument) (*domain.ExtractedText, error) {
	format := domain.FormatFromFileName(doc.FileName)

	var (
		text string
		err  error
	)
	switch format {
	case domain.FormatPDF:
		text, err = extractPDF(doc.Content)
	case domain.FormatDOCX:
		text, err = extractDOCX(doc.Content)
	case domain.FormatPlainText:
		text, err = extractPlainText(doc.Content)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, doc.FileName)
	}
	if err != nil {
		e.logger.Warn().Str("file_name", doc.FileName).Str("format", string(format)).Err(err).
			Msg("extractor.Extract: parsing failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}

	out := &domain.ExtractedText{
		Content:  text,
		FileName: doc.FileName,
		Format:   format,
	}
	if e.detector != nil {
		if lang, ok := e.detector.Detect(text); ok {
			out.DetectedLanguage = lang
		}
	}

	e.logger.Debug().Str("file_name", doc.FileName).Str("format", string(format)).
		Int("bytes", len(doc.Content)).Int("chars", len(text)).
		Msg("extractor.Extract: document extracted")

	return out, nil
}
