package translator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"doctranslate/internal/config"
	"doctranslate/internal/port"
)

// ProviderFactory is a function that creates a Translator from the translator config.
type ProviderFactory func(cfg *config.TranslatorConfig) (port.Translator, error)

// registry of provider factories, populated by init() in each provider package.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// Providers returns the registered provider names, sorted.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RequiresCredential reports whether t needs the caller's API key.
func RequiresCredential(t port.Translator) bool {
	if policy, ok := t.(port.CredentialPolicy); ok {
		return policy.RequiresCredential()
	}
	return true
}

// NewTranslator creates a Translator for cfg.Provider using the registered
// factory. With cfg.MaxRetries > 0 the provider is wrapped in a
// RetryingTranslator; otherwise a failed attempt is final.
func NewTranslator(cfg *config.TranslatorConfig, logger zerolog.Logger) (port.Translator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown translator provider: %s (available: %s)",
			cfg.Provider, strings.Join(Providers(), ", "))
	}
	t, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating %s translator: %w", cfg.Provider, err)
	}
	if cfg.MaxRetries > 0 {
		return NewRetryingTranslator(t, cfg.MaxRetries, logger), nil
	}
	return t, nil
}
