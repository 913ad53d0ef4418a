package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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
	providerName   = "claude"
	defaultBaseURL = "https://api.anthropic.com/v1"
	defaultModel   = "claude-sonnet-4-20250514"
	apiVersion     = "2023-06-01"
	maxTokens      = 16384
)

func init() {
	translator.RegisterProvider(providerName, func(cfg *config.TranslatorConfig) (port.Translator, error) {
		return NewTranslator(cfg), nil
	})
}

// Translator implements port.Translator using the Anthropic Messages API.
type Translator struct {
	model    string
	endpoint string
	client   *http.Client
}

// NewTranslator creates a Claude-backed translator from the translator config.
func NewTranslator(cfg *config.TranslatorConfig) *Translator {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return newTranslator(cfg, strings.TrimSuffix(baseURL, "/")+"/messages")
}

// NewTranslatorWithEndpoint creates a translator pointing at a custom API endpoint (for testing).
func NewTranslatorWithEndpoint(cfg *config.TranslatorConfig, endpoint string) *Translator {
	return newTranslator(cfg, endpoint)
}

func newTranslator(cfg *config.TranslatorConfig, endpoint string) *Translator {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Translator{
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: cfg.Timeout()},
	}
}

func (t *Translator) Name() string {
	return fmt.Sprintf("Claude (%s)", t.model)
}

// The Messages API takes the system instruction as a top-level field and
// only user/assistant turns in messages.
type messagesRequest struct {
	Model     string               `json:"model"`
	MaxTokens int                  `json:"max_tokens"`
	System    string               `json:"system"`
	Messages  []translator.Message `json:"messages"`
}

// apiResponse models the Anthropic Messages API response.
type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func (t *Translator) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error) {
	if req.Credential == "" {
		return nil, domain.ErrMissingCredential
	}

	messages := translator.BuildMessages(req)
	bodyBytes, err := json.Marshal(messagesRequest{
		Model:     t.model,
		MaxTokens: maxTokens,
		System:    messages[0].Content,
		Messages:  messages[1:],
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", req.Credential)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling anthropic API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		svcErr := &translator.ServiceError{Provider: providerName, StatusCode: resp.StatusCode, Body: string(respBody)}
		if resp.StatusCode == http.StatusTooManyRequests {
			wait := translator.RetryAfter(resp.Header, time.Now())
			return nil, translator.NewRateLimitError(providerName, svcErr, wait)
		}
		return nil, svcErr
	}

	content, err := parseResponse(respBody)
	if err != nil {
		return nil, err
	}

	return &domain.TranslationResult{
		Content:  content,
		Language: req.TargetLanguage,
		Provider: providerName,
		Model:    t.model,
	}, nil
}

// parseResponse concatenates the text blocks of the reply. A reply cut off
// at max_tokens is an error rather than a partial translation.
func parseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if resp.StopReason == "max_tokens" {
		return "", errors.New("output truncated (stop_reason: max_tokens)")
	}

	var sb strings.Builder
	found := false
	for _, block := range resp.Content {
		if block.Type != "text" {
			continue
		}
		sb.WriteString(block.Text)
		found = true
	}
	if !found {
		return "", errors.New("empty response from API: no text content")
	}
	return sb.String(), nil
}
