package port

import (
	"context"

	"doctranslate/internal/domain"
)

// DocumentExtractor turns an uploaded document into plain text.
type DocumentExtractor interface {
	Extract(ctx context.Context, doc domain.UploadedDocument) (*domain.ExtractedText, error)
}

// LanguageDetector guesses the language of a text sample.
type LanguageDetector interface {
	Detect(text string) (domain.Language, bool)
}
