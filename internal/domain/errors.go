package domain

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported file format")
	ErrExtractionFailed    = errors.New("document extraction failed")
	ErrTranslationFailed   = errors.New("translation failed")
	ErrMissingCredential   = errors.New("missing API credential")
	ErrMissingFile         = errors.New("no document uploaded")
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyText           = errors.New("no text to translate")
	ErrArchiveFailed       = errors.New("storing translation failed")
)
