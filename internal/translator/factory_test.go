package translator_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctranslate/internal/config"
	"doctranslate/internal/port"
	"doctranslate/internal/translator"
	"doctranslate/mocks"
)

func init() {
	translator.RegisterProvider("test-echo", func(cfg *config.TranslatorConfig) (port.Translator, error) {
		return new(mocks.MockTranslator), nil
	})
}

func TestNewTranslator_UnknownProvider(t *testing.T) {
	_, err := translator.NewTranslator(&config.TranslatorConfig{Provider: "nope"}, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown translator provider: nope")
	assert.ErrorContains(t, err, "available: ")
	assert.ErrorContains(t, err, "test-echo")
}

func TestNewTranslator_SingleAttemptByDefault(t *testing.T) {
	tr, err := translator.NewTranslator(&config.TranslatorConfig{Provider: "test-echo"}, zerolog.Nop())
	require.NoError(t, err)

	_, wrapped := tr.(*translator.RetryingTranslator)
	assert.False(t, wrapped)
}

func TestNewTranslator_WrapsWithRetries(t *testing.T) {
	tr, err := translator.NewTranslator(&config.TranslatorConfig{Provider: "test-echo", MaxRetries: 2}, zerolog.Nop())
	require.NoError(t, err)

	_, wrapped := tr.(*translator.RetryingTranslator)
	assert.True(t, wrapped)
}

func TestProviders_Sorted(t *testing.T) {
	names := translator.Providers()
	assert.Contains(t, names, "test-echo")
	assert.IsIncreasing(t, names)
}
