package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"doctranslate/internal/domain"
	"doctranslate/internal/export"
	"doctranslate/internal/port"
	"doctranslate/internal/translator"
)

const (
	// PlainTextContentType is used for downloads whatever the original format was.
	PlainTextContentType = "text/plain; charset=utf-8"

	DownloadFormatText = "txt"
	DownloadFormatDOCX = "docx"

	fallbackFileName = "document.txt"
)

// TranslateInput is the DTO for a translate action. Credential is the
// caller's own API key and lives only for this call.
type TranslateInput struct {
	Text           string
	TargetLanguage string
	Credential     string
}

// DownloadInput is the DTO for rendering a translation as a file.
type DownloadInput struct {
	Text           string
	FileName       string
	Format         string
	TargetLanguage string
}

// DownloadOutput is a rendered download.
type DownloadOutput struct {
	FileName        string
	ContentType     string
	ContentLanguage string
	Content         []byte
	ArchiveURL      string
}

// TranslationService defines the translate and download contract.
type TranslationService interface {
	Translate(ctx context.Context, input TranslateInput) (*domain.TranslationResult, error)
	Download(ctx context.Context, input DownloadInput) (*DownloadOutput, error)
}

type translationService struct {
	translator port.Translator
	archive    port.ArchiveStorage
	logger     zerolog.Logger
}

// NewTranslationService creates a new TranslationService. archive may be nil
// when downloads are not archived.
func NewTranslationService(translator port.Translator, archive port.ArchiveStorage, logger zerolog.Logger) TranslationService {
	return &translationService{
		translator: translator,
		archive:    archive,
		logger:     logger,
	}
}

// Translate issues a single request to the configured provider. Every
// provider failure is reported as domain.ErrTranslationFailed with the cause
// attached; input.Text is never modified.
func (s *translationService) Translate(ctx context.Context, input TranslateInput) (*domain.TranslationResult, error) {
	if input.Credential == "" && translator.RequiresCredential(s.translator) {
		return nil, domain.ErrMissingCredential
	}
	lang, err := domain.ParseLanguage(input.TargetLanguage)
	if err != nil {
		return nil, err
	}
	if input.Text == "" {
		return nil, domain.ErrEmptyText
	}

	req := domain.TranslationRequest{
		SourceText:     input.Text,
		TargetLanguage: lang,
		Credential:     input.Credential,
	}

	s.logger.Info().Object("request", req).Str("provider", s.translator.Name()).
		Msg("translationService.Translate: sending translation request")

	result, err := s.translator.Translate(ctx, req)
	if err != nil {
		s.logger.Error().Object("request", req).Err(err).
			Msg("translationService.Translate: translation failed")
		if errors.Is(err, domain.ErrMissingCredential) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrTranslationFailed, err)
	}

	return result, nil
}

// Download renders the translated text under translated_<original name>.
// Plain text is the default; docx is opt-in.
func (s *translationService) Download(ctx context.Context, input DownloadInput) (*DownloadOutput, error) {
	fileName := input.FileName
	if fileName == "" {
		fileName = fallbackFileName
	}

	out := &DownloadOutput{
		FileName:    domain.DownloadName(fileName),
		ContentType: PlainTextContentType,
		Content:     []byte(input.Text),
	}

	if input.TargetLanguage != "" {
		lang, err := domain.ParseLanguage(input.TargetLanguage)
		if err != nil {
			return nil, err
		}
		out.ContentLanguage = lang.Tag().String()
	}

	switch strings.ToLower(input.Format) {
	case "", DownloadFormatText:
	case DownloadFormatDOCX:
		data, err := export.DOCX(input.Text)
		if err != nil {
			return nil, fmt.Errorf("rendering docx: %w", err)
		}
		out.Content = data
		out.ContentType = export.DOCXContentType
		if !strings.HasSuffix(out.FileName, ".docx") {
			out.FileName += ".docx"
		}
	default:
		return nil, fmt.Errorf("%w: download format %q", domain.ErrUnsupportedFormat, input.Format)
	}

	if s.archive != nil {
		if url, err := s.store(ctx, out); err != nil {
			s.logger.Warn().Str("file_name", out.FileName).Err(err).
				Msg("translationService.Download: archiving failed, serving download anyway")
		} else {
			out.ArchiveURL = url
		}
	}

	return out, nil
}

func (s *translationService) store(ctx context.Context, out *DownloadOutput) (string, error) {
	key := fmt.Sprintf("translations/%s/%s", uuid.New(), out.FileName)
	if _, err := s.archive.Put(ctx, port.ArchiveObject{
		Key:             key,
		Body:            bytes.NewReader(out.Content),
		ContentType:     out.ContentType,
		ContentLanguage: out.ContentLanguage,
	}); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrArchiveFailed, err)
	}

	url, err := s.archive.PresignGet(ctx, key)
	if err != nil {
		// Without a link nobody can reach the object.
		if delErr := s.archive.Delete(ctx, key); delErr != nil {
			s.logger.Warn().Str("key", key).Err(delErr).
				Msg("translationService.store: failed to remove unreachable archive object")
		}
		return "", fmt.Errorf("%w: presigning: %w", domain.ErrArchiveFailed, err)
	}
	return url, nil
}
