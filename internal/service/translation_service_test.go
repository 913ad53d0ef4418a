package service_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doctranslate/internal/domain"
	"doctranslate/internal/export"
	"doctranslate/internal/port"
	"doctranslate/internal/service"
	"doctranslate/internal/translator"
	"doctranslate/mocks"
)

func newTranslationService(tr *mocks.MockTranslator, archive port.ArchiveStorage) service.TranslationService {
	tr.On("Name").Return("Mock (test)").Maybe()
	return service.NewTranslationService(tr, archive, zerolog.Nop())
}

func TestTranslationService_Translate_Success(t *testing.T) {
	tr := new(mocks.MockTranslator)
	svc := newTranslationService(tr, nil)

	req := domain.TranslationRequest{SourceText: "Hello", TargetLanguage: domain.LanguageFrench, Credential: "sk-user"}
	tr.On("Translate", mock.Anything, req).
		Return(&domain.TranslationResult{Content: "Bonjour", Language: domain.LanguageFrench}, nil)

	got, err := svc.Translate(context.Background(), service.TranslateInput{
		Text:           "Hello",
		TargetLanguage: "French",
		Credential:     "sk-user",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bonjour", got.Content)
	tr.AssertExpectations(t)
}

func TestTranslationService_Translate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   service.TranslateInput
		wantErr error
	}{
		{"missing credential", service.TranslateInput{Text: "Hello", TargetLanguage: "French"}, domain.ErrMissingCredential},
		{"unknown language", service.TranslateInput{Text: "Hello", TargetLanguage: "Klingon", Credential: "k"}, domain.ErrUnsupportedLanguage},
		{"lowercase language", service.TranslateInput{Text: "Hello", TargetLanguage: "french", Credential: "k"}, domain.ErrUnsupportedLanguage},
		{"empty text", service.TranslateInput{TargetLanguage: "French", Credential: "k"}, domain.ErrEmptyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := new(mocks.MockTranslator)
			svc := newTranslationService(tr, nil)

			_, err := svc.Translate(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			tr.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything)
		})
	}
}

func TestTranslationService_Translate_KeylessBackendSkipsCredentialCheck(t *testing.T) {
	tr := new(mocks.MockKeylessTranslator)
	tr.On("Name").Return("Ollama (llama3)").Maybe()
	req := domain.TranslationRequest{SourceText: "Hello", TargetLanguage: domain.LanguageItalian}
	tr.On("Translate", mock.Anything, req).
		Return(&domain.TranslationResult{Content: "Ciao", Language: domain.LanguageItalian}, nil)
	svc := service.NewTranslationService(tr, nil, zerolog.Nop())

	result, err := svc.Translate(context.Background(), service.TranslateInput{Text: "Hello", TargetLanguage: "Italian"})

	require.NoError(t, err)
	assert.Equal(t, "Ciao", result.Content)
	tr.AssertExpectations(t)
}

func TestTranslationService_Translate_RetryWrapperKeepsCredentialPolicy(t *testing.T) {
	keyless := new(mocks.MockKeylessTranslator)
	keyless.On("Name").Return("Ollama (llama3)").Maybe()
	keyless.On("Translate", mock.Anything, mock.Anything).
		Return(&domain.TranslationResult{Content: "Ciao"}, nil)
	svc := service.NewTranslationService(translator.NewRetryingTranslator(keyless, 2, zerolog.Nop()), nil, zerolog.Nop())

	_, err := svc.Translate(context.Background(), service.TranslateInput{Text: "Hello", TargetLanguage: "Italian"})

	require.NoError(t, err)
	assert.False(t, translator.RequiresCredential(new(mocks.MockKeylessTranslator)))
	assert.True(t, translator.RequiresCredential(new(mocks.MockTranslator)))
}

func TestTranslationService_Translate_ProviderFailureKeepsSourceText(t *testing.T) {
	tr := new(mocks.MockTranslator)
	svc := newTranslationService(tr, nil)

	cause := &translator.ServiceError{Provider: "openai", StatusCode: http.StatusUnauthorized}
	tr.On("Translate", mock.Anything, mock.Anything).Return(nil, cause).Once()

	input := service.TranslateInput{Text: "Original text", TargetLanguage: "German", Credential: "bad-key"}
	got, err := svc.Translate(context.Background(), input)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrTranslationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Original text", input.Text)
	tr.AssertNumberOfCalls(t, "Translate", 1)
}

func TestTranslationService_Translate_MissingCredentialFromProviderIsNotWrapped(t *testing.T) {
	tr := new(mocks.MockTranslator)
	svc := newTranslationService(tr, nil)

	tr.On("Translate", mock.Anything, mock.Anything).Return(nil, domain.ErrMissingCredential)

	_, err := svc.Translate(context.Background(), service.TranslateInput{Text: "Hi", TargetLanguage: "German", Credential: "k"})

	assert.ErrorIs(t, err, domain.ErrMissingCredential)
	assert.NotErrorIs(t, err, domain.ErrTranslationFailed)
}

func TestTranslationService_Download_PlainText(t *testing.T) {
	svc := newTranslationService(new(mocks.MockTranslator), nil)

	out, err := svc.Download(context.Background(), service.DownloadInput{
		Text:           "Bonjour",
		FileName:       "report.pdf",
		TargetLanguage: "French",
	})

	require.NoError(t, err)
	assert.Equal(t, "translated_report.pdf", out.FileName)
	assert.Equal(t, service.PlainTextContentType, out.ContentType)
	assert.Equal(t, "fr", out.ContentLanguage)
	assert.Equal(t, []byte("Bonjour"), out.Content)
	assert.Empty(t, out.ArchiveURL)
}

func TestTranslationService_Download_DefaultName(t *testing.T) {
	svc := newTranslationService(new(mocks.MockTranslator), nil)

	out, err := svc.Download(context.Background(), service.DownloadInput{Text: "x"})

	require.NoError(t, err)
	assert.Equal(t, "translated_document.txt", out.FileName)
	assert.Empty(t, out.ContentLanguage)
}

func TestTranslationService_Download_DOCX(t *testing.T) {
	svc := newTranslationService(new(mocks.MockTranslator), nil)

	out, err := svc.Download(context.Background(), service.DownloadInput{
		Text:     "Hallo\nWelt",
		FileName: "letter.docx",
		Format:   "docx",
	})

	require.NoError(t, err)
	assert.Equal(t, "translated_letter.docx", out.FileName)
	assert.Equal(t, export.DOCXContentType, out.ContentType)
	assert.Equal(t, []byte("PK"), out.Content[:2])

	out, err = svc.Download(context.Background(), service.DownloadInput{Text: "Hallo", FileName: "notes.txt", Format: "DOCX"})
	require.NoError(t, err)
	assert.Equal(t, "translated_notes.txt.docx", out.FileName)
}

func TestTranslationService_Download_Invalid(t *testing.T) {
	svc := newTranslationService(new(mocks.MockTranslator), nil)

	_, err := svc.Download(context.Background(), service.DownloadInput{Text: "x", FileName: "a.txt", Format: "rtf"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = svc.Download(context.Background(), service.DownloadInput{Text: "x", FileName: "a.txt", TargetLanguage: "Elvish"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestTranslationService_Download_Archived(t *testing.T) {
	archive := new(mocks.MockArchiveStorage)
	svc := newTranslationService(new(mocks.MockTranslator), archive)

	var storedKey, body string
	archive.On("Put", mock.Anything, mock.MatchedBy(func(obj port.ArchiveObject) bool {
		if body == "" {
			b, _ := io.ReadAll(obj.Body)
			body = string(b)
		}
		storedKey = obj.Key
		return strings.HasPrefix(obj.Key, "translations/") &&
			strings.HasSuffix(obj.Key, "/translated_report.txt") &&
			obj.ContentType == service.PlainTextContentType &&
			obj.ContentLanguage == "es" &&
			body == "Hola"
	})).Return("https://bucket.s3.amazonaws.com/key", nil)
	archive.On("PresignGet", mock.Anything, mock.AnythingOfType("string")).Return("https://signed.example/key", nil)

	out, err := svc.Download(context.Background(), service.DownloadInput{
		Text:           "Hola",
		FileName:       "report.txt",
		TargetLanguage: "Spanish",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/key", out.ArchiveURL)
	assert.Equal(t, []byte("Hola"), out.Content)
	archive.AssertCalled(t, "PresignGet", mock.Anything, storedKey)
}

func TestTranslationService_Download_ArchiveFailureStillServes(t *testing.T) {
	archive := new(mocks.MockArchiveStorage)
	svc := newTranslationService(new(mocks.MockTranslator), archive)

	archive.On("Put", mock.Anything, mock.Anything).Return("", errors.New("access denied"))

	out, err := svc.Download(context.Background(), service.DownloadInput{Text: "Hola", FileName: "report.txt"})

	require.NoError(t, err)
	assert.Equal(t, "translated_report.txt", out.FileName)
	assert.Empty(t, out.ArchiveURL)
	archive.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything)
}

func TestTranslationService_Download_PresignFailureRemovesObject(t *testing.T) {
	archive := new(mocks.MockArchiveStorage)
	svc := newTranslationService(new(mocks.MockTranslator), archive)

	var storedKey string
	archive.On("Put", mock.Anything, mock.MatchedBy(func(obj port.ArchiveObject) bool {
		storedKey = obj.Key
		return true
	})).Return("https://bucket.s3.amazonaws.com/key", nil)
	archive.On("PresignGet", mock.Anything, mock.AnythingOfType("string")).Return("", errors.New("expired credentials"))
	archive.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	out, err := svc.Download(context.Background(), service.DownloadInput{Text: "Hola", FileName: "report.txt"})

	require.NoError(t, err)
	assert.Empty(t, out.ArchiveURL)
	assert.Equal(t, []byte("Hola"), out.Content)
	require.NotEmpty(t, storedKey)
	archive.AssertCalled(t, "Delete", mock.Anything, storedKey)
}

func TestTranslationService_Download_CleanupFailureStillServes(t *testing.T) {
	archive := new(mocks.MockArchiveStorage)
	svc := newTranslationService(new(mocks.MockTranslator), archive)

	archive.On("Put", mock.Anything, mock.Anything).Return("https://bucket.s3.amazonaws.com/key", nil)
	archive.On("PresignGet", mock.Anything, mock.Anything).Return("", errors.New("expired credentials"))
	archive.On("Delete", mock.Anything, mock.Anything).Return(errors.New("access denied"))

	out, err := svc.Download(context.Background(), service.DownloadInput{Text: "Hola", FileName: "report.txt"})

	require.NoError(t, err)
	assert.Equal(t, "translated_report.txt", out.FileName)
	assert.Empty(t, out.ArchiveURL)
	archive.AssertExpectations(t)
}
