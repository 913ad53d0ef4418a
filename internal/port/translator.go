package port

import (
	"context"

	"doctranslate/internal/domain"
)

// Translator abstracts an LLM completion endpoint that translates text.
// Implementations must send exactly one system instruction and one user
// message per attempt and must not retain the credential.
type Translator interface {
	Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error)
	Name() string
}

// CredentialPolicy is implemented by translators whose backend can run
// without the caller's API key. Translators that do not implement it always
// require one.
type CredentialPolicy interface {
	RequiresCredential() bool
}

// ConnectionChecker is implemented by translators that can probe their
// backend without a credential (self-hosted providers).
type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}
