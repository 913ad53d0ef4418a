package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctranslate/internal/domain"
)

// MockDocumentExtractor is a mock implementation of port.DocumentExtractor.
type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) Extract(ctx context.Context, doc domain.UploadedDocument) (*domain.ExtractedText, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedText), args.Error(1)
}

// MockLanguageDetector is a mock implementation of port.LanguageDetector.
type MockLanguageDetector struct {
	mock.Mock
}

func (m *MockLanguageDetector) Detect(text string) (domain.Language, bool) {
	args := m.Called(text)
	return args.Get(0).(domain.Language), args.Bool(1)
}
