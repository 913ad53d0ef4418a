package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctranslate/internal/domain"
	"doctranslate/internal/service"
)

// MockTranslationService is a mock implementation of service.TranslationService.
type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) Translate(ctx context.Context, input service.TranslateInput) (*domain.TranslationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TranslationResult), args.Error(1)
}

func (m *MockTranslationService) Download(ctx context.Context, input service.DownloadInput) (*service.DownloadOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadOutput), args.Error(1)
}
