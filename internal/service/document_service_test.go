package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doctranslate/internal/config"
	"doctranslate/internal/domain"
	"doctranslate/internal/service"
	"doctranslate/mocks"
)

func newDocumentService(ext *mocks.MockDocumentExtractor, maxMB int64) service.DocumentService {
	return service.NewDocumentService(ext, &config.UploadConfig{MaxFileSizeMB: maxMB}, zerolog.Nop())
}

func TestDocumentService_Extract_Success(t *testing.T) {
	ext := new(mocks.MockDocumentExtractor)
	svc := newDocumentService(ext, 1)

	want := &domain.ExtractedText{Content: "Hello", FileName: "hello.txt", Format: domain.FormatPlainText}
	ext.On("Extract", mock.Anything, domain.UploadedDocument{FileName: "hello.txt", Content: []byte("Hello")}).
		Return(want, nil)

	got, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "hello.txt",
		File:     strings.NewReader("Hello"),
		Size:     5,
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	ext.AssertExpectations(t)
}

func TestDocumentService_Extract_MissingFile(t *testing.T) {
	ext := new(mocks.MockDocumentExtractor)
	svc := newDocumentService(ext, 1)

	_, err := svc.Extract(context.Background(), service.ExtractInput{})

	assert.ErrorIs(t, err, domain.ErrMissingFile)
	ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestDocumentService_Extract_UnsupportedFormatSkipsRead(t *testing.T) {
	ext := new(mocks.MockDocumentExtractor)
	svc := newDocumentService(ext, 1)

	_, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "image.png",
		File:     strings.NewReader("png"),
		Size:     3,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestDocumentService_Extract_DeclaredSizeTooLarge(t *testing.T) {
	ext := new(mocks.MockDocumentExtractor)
	svc := newDocumentService(ext, 1)

	_, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "big.txt",
		File:     strings.NewReader("x"),
		Size:     2 * 1024 * 1024,
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestDocumentService_Extract_StreamLargerThanDeclared(t *testing.T) {
	ext := new(mocks.MockDocumentExtractor)
	svc := newDocumentService(ext, 1)

	_, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "big.txt",
		File:     bytes.NewReader(make([]byte, 1024*1024+1)),
		Size:     10,
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestDocumentService_Extract_PropagatesExtractionError(t *testing.T) {
	ext := new(mocks.MockDocumentExtractor)
	svc := newDocumentService(ext, 1)

	ext.On("Extract", mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrExtractionFailed, errors.New("bad xref")))

	_, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "broken.pdf",
		File:     strings.NewReader("%PDF"),
		Size:     4,
	})

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}
