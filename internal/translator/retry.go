package translator

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"doctranslate/internal/domain"
	"doctranslate/internal/port"
)

const (
	defaultBaseDelay = time.Second
	maxRetryDelay    = 30 * time.Second
)

// RetryingTranslator retries rate-limited and 5xx attempts of another
// Translator. Authentication failures, bad requests and transport errors are
// returned immediately.
type RetryingTranslator struct {
	inner      port.Translator
	maxRetries int
	baseDelay  time.Duration
	logger     zerolog.Logger
}

// RetryOption customizes a RetryingTranslator.
type RetryOption func(*RetryingTranslator)

// WithBaseDelay sets the first backoff delay for 5xx failures.
func WithBaseDelay(d time.Duration) RetryOption {
	return func(r *RetryingTranslator) {
		r.baseDelay = d
	}
}

// NewRetryingTranslator wraps inner with up to maxRetries extra attempts.
func NewRetryingTranslator(inner port.Translator, maxRetries int, logger zerolog.Logger, opts ...RetryOption) *RetryingTranslator {
	r := &RetryingTranslator{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  defaultBaseDelay,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RetryingTranslator) Name() string {
	return r.inner.Name()
}

func (r *RetryingTranslator) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error) {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			delay, ok := r.delayFor(lastErr, attempt)
			if !ok {
				return nil, lastErr
			}
			r.logger.Warn().Object("request", req).Int("attempt", attempt).Dur("delay", delay).Err(lastErr).
				Msg("translator.RetryingTranslator: retrying")
			if err := sleep(ctx, delay); err != nil {
				return nil, lastErr
			}
		}

		out, err := r.inner.Translate(ctx, req)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// delayFor decides whether err is worth another attempt and how long to wait.
func (r *RetryingTranslator) delayFor(err error, attempt int) (time.Duration, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return min(rlErr.RetryAfter, maxRetryDelay), true
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Temporary() {
		return min(r.baseDelay<<(attempt-1), maxRetryDelay), true
	}
	return 0, false
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RequiresCredential reports the wrapped translator's credential policy.
func (r *RetryingTranslator) RequiresCredential() bool {
	return RequiresCredential(r.inner)
}

// CheckConnection forwards to the wrapped translator when it supports probing.
func (r *RetryingTranslator) CheckConnection(ctx context.Context) error {
	if checker, ok := r.inner.(port.ConnectionChecker); ok {
		return checker.CheckConnection(ctx)
	}
	return nil
}
