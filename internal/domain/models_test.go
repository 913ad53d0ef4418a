package domain_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"doctranslate/internal/domain"
)

func TestDownloadName(t *testing.T) {
	assert.Equal(t, "translated_report.pdf", domain.DownloadName("report.pdf"))
	assert.Equal(t, "translated_notes.txt", domain.DownloadName("notes.txt"))
}

func TestTranslationRequest_NeverPrintsCredential(t *testing.T) {
	req := domain.TranslationRequest{
		SourceText:     "confidential body",
		TargetLanguage: domain.LanguageGerman,
		Credential:     "sk-secret-123",
	}

	printed := fmt.Sprintf("%v %+v %s", req, req, req)
	assert.NotContains(t, printed, "sk-secret-123")
	assert.NotContains(t, printed, "confidential body")

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("request", req).Msg("translate")
	assert.NotContains(t, buf.String(), "sk-secret-123")
	assert.NotContains(t, buf.String(), "confidential body")
	assert.Contains(t, buf.String(), `"target_language":"German"`)
	assert.Contains(t, buf.String(), `"chars":17`)
}
