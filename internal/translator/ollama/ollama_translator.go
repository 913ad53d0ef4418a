package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"doctranslate/internal/config"
	"doctranslate/internal/domain"
	"doctranslate/internal/port"
	"doctranslate/internal/translator"
)

const (
	providerName = "ollama"
	defaultHost  = "http://localhost:11434"
	defaultModel = "llama3.1"
)

func init() {
	translator.RegisterProvider(providerName, func(cfg *config.TranslatorConfig) (port.Translator, error) {
		return NewTranslator(cfg), nil
	})
}

// Translator talks to a self-hosted Ollama /api/chat endpoint. The caller's
// credential is forwarded as a bearer token for deployments behind an
// authenticating proxy.
type Translator struct {
	host   string
	model  string
	client *http.Client
}

type chatRequest struct {
	Model    string               `json:"model"`
	Messages []translator.Message `json:"messages"`
	Stream   bool                 `json:"stream"`
}

type chatResponse struct {
	Message translator.Message `json:"message"`
	Done    bool               `json:"done"`
}

func NewTranslator(cfg *config.TranslatorConfig) *Translator {
	host := cfg.BaseURL
	if host == "" {
		host = defaultHost
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Translator{
		host:   strings.TrimSuffix(host, "/"),
		model:  model,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

func (t *Translator) Name() string {
	return fmt.Sprintf("Ollama (%s)", t.model)
}

// Translate sends a non-streaming chat request with the system and user messages.
func (t *Translator) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error) {
	jsonBody, err := json.Marshal(chatRequest{
		Model:    t.model,
		Messages: translator.BuildMessages(req),
		Stream:   false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.host+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.Credential != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Credential)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		svcErr := &translator.ServiceError{Provider: providerName, StatusCode: resp.StatusCode, Body: string(body)}
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, translator.NewRateLimitError(providerName, svcErr,
				translator.RetryAfter(resp.Header, time.Now()))
		}
		return nil, svcErr
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &domain.TranslationResult{
		Content:  result.Message.Content,
		Language: req.TargetLanguage,
		Provider: providerName,
		Model:    t.model,
	}, nil
}

// RequiresCredential is false: a local Ollama takes no key. A key, when
// given, is forwarded for hosts behind an authenticating proxy.
func (t *Translator) RequiresCredential() bool {
	return false
}

// CheckConnection verifies Ollama is running.
func (t *Translator) CheckConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.host+"/api/tags", nil)
	if err != nil {
		return err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot connect to Ollama at %s: %w", t.host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}
	return nil
}
