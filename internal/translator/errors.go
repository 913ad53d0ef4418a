package translator

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// defaultRetryAfter applies when a 429 names no wait.
const defaultRetryAfter = 60 * time.Second

// RateLimitError indicates a provider answered HTTP 429.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError wraps err for provider. A non-positive wait becomes one minute.
func NewRateLimitError(provider string, err error, wait time.Duration) *RateLimitError {
	if wait <= 0 {
		wait = defaultRetryAfter
	}
	return &RateLimitError{Err: err, RetryAfter: wait, Provider: provider}
}

// RetryAfter reads the Retry-After header in either of its forms, delay
// seconds or an HTTP date. Missing, malformed or past values give 0.
func RetryAfter(h http.Header, now time.Time) time.Duration {
	val := strings.TrimSpace(h.Get("Retry-After"))
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	at, err := http.ParseTime(val)
	if err != nil || !at.After(now) {
		return 0
	}
	return at.Sub(now).Round(time.Second)
}

// ServiceError is a non-success HTTP answer from a provider other than 429.
type ServiceError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		// The body may echo the key back.
		return fmt.Sprintf("%s rejected the API key (status %d)", e.Provider, e.StatusCode)
	default:
		return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, truncate(e.Body, 500))
	}
}

// Temporary reports whether the failure is on the provider side and may pass.
func (e *ServiceError) Temporary() bool {
	return e.StatusCode >= 500
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
