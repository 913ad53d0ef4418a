package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctranslate/internal/domain"
	"doctranslate/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Extract(ctx context.Context, input service.ExtractInput) (*domain.ExtractedText, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedText), args.Error(1)
}
