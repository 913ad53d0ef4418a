package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"doctranslate/internal/config"
	"doctranslate/internal/domain"
	"doctranslate/internal/port"
	"doctranslate/internal/translator"
)

const (
	providerName = "gemini"
	defaultModel = "gemini-2.0-flash"
)

func init() {
	translator.RegisterProvider(providerName, func(cfg *config.TranslatorConfig) (port.Translator, error) {
		return NewTranslator(cfg), nil
	})
}

// Translator implements port.Translator with the Gemini API. A client is
// built per request because the API key belongs to the caller.
type Translator struct {
	model   string
	baseURL string
	client  *http.Client
}

func NewTranslator(cfg *config.TranslatorConfig) *Translator {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Translator{
		model:   model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout()},
	}
}

func (t *Translator) Name() string {
	return fmt.Sprintf("Gemini (%s)", t.model)
}

func (t *Translator) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error) {
	if req.Credential == "" {
		return nil, domain.ErrMissingCredential
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     req.Credential,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: t.client,
	}
	if t.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: t.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, t.model, genai.Text(req.SourceText), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(translator.BuildSystemPrompt(req.TargetLanguage), genai.RoleUser),
	})
	if err != nil {
		return nil, mapError(err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, errors.New("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	return &domain.TranslationResult{
		Content:  sb.String(),
		Language: req.TargetLanguage,
		Provider: providerName,
		Model:    t.model,
	}, nil
}

// mapError converts SDK API errors into the shared translator error types.
func mapError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("generate content: %w", err)
	}
	svcErr := &translator.ServiceError{Provider: providerName, StatusCode: apiErr.Code, Body: apiErr.Message}
	if apiErr.Code == http.StatusTooManyRequests {
		return translator.NewRateLimitError(providerName, svcErr, 0)
	}
	return svcErr
}
