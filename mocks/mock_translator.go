package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctranslate/internal/domain"
)

// MockTranslator is a mock implementation of port.Translator.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TranslationResult), args.Error(1)
}

func (m *MockTranslator) Name() string {
	args := m.Called()
	return args.String(0)
}

// MockCheckingTranslator is a MockTranslator that also implements
// port.ConnectionChecker.
type MockCheckingTranslator struct {
	MockTranslator
}

func (m *MockCheckingTranslator) CheckConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockKeylessTranslator is a MockTranslator whose backend takes no API key.
type MockKeylessTranslator struct {
	MockTranslator
}

func (m *MockKeylessTranslator) RequiresCredential() bool {
	return false
}
