package domain

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DownloadPrefix is prepended to the original file name of a translation download.
const DownloadPrefix = "translated_"

// UploadedDocument is a document received from the user. It lives for one request.
type UploadedDocument struct {
	FileName string
	Content  []byte
}

// ExtractedText is the plain text read from an UploadedDocument.
type ExtractedText struct {
	Content          string         `json:"content"`
	FileName         string         `json:"file_name"`
	Format           DocumentFormat `json:"format"`
	DetectedLanguage Language       `json:"detected_language,omitempty"`
}

// TranslationRequest is built fresh for every translate action.
type TranslationRequest struct {
	SourceText     string
	TargetLanguage Language
	Credential     string
}

// String omits the credential and the text body.
func (r TranslationRequest) String() string {
	return fmt.Sprintf("TranslationRequest{target=%s, chars=%d, credential=[REDACTED]}",
		r.TargetLanguage, len(r.SourceText))
}

// MarshalZerologObject logs the request without the credential or the text.
func (r TranslationRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("target_language", string(r.TargetLanguage)).
		Int("chars", len(r.SourceText))
}

// TranslationResult is the model output for one TranslationRequest.
type TranslationResult struct {
	Content  string   `json:"content"`
	Language Language `json:"language"`
	Provider string   `json:"provider"`
	Model    string   `json:"model"`
}

// DownloadName returns the file name the translated text is offered under.
func DownloadName(originalFileName string) string {
	return DownloadPrefix + originalFileName
}
