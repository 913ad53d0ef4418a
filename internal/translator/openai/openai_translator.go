package openai

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
	providerName   = "openai"
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"
)

func init() {
	translator.RegisterProvider(providerName, func(cfg *config.TranslatorConfig) (port.Translator, error) {
		return NewTranslator(cfg), nil
	})
}

// Translator implements port.Translator using the OpenAI Chat Completions API.
type Translator struct {
	model    string
	endpoint string
	client   *http.Client
}

// NewTranslator creates an OpenAI-backed translator from the translator config.
func NewTranslator(cfg *config.TranslatorConfig) *Translator {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return newTranslator(cfg, strings.TrimSuffix(baseURL, "/")+"/chat/completions")
}

// NewTranslatorWithEndpoint creates a translator pointing at a custom completions endpoint (for testing).
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
	return fmt.Sprintf("OpenAI (%s)", t.model)
}

type chatRequest struct {
	Model    string               `json:"model"`
	Messages []translator.Message `json:"messages"`
	N        int                  `json:"n"`
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (t *Translator) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error) {
	if req.Credential == "" {
		return nil, domain.ErrMissingCredential
	}

	bodyBytes, err := json.Marshal(chatRequest{
		Model:    t.model,
		Messages: translator.BuildMessages(req),
		N:        1,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.Credential)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling openai API: %w", err)
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

// parseResponse returns choices[0].message.content untouched.
func parseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from API: no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
