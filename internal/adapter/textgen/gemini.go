package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"edu-perfil/internal/domain"

	"google.golang.org/genai"
)

const (
	geminiTopK = 40
	geminiTopP = 0.95
)

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	client *genai.Client
	opts   Options
}

// NewGeminiGenerator creates a Gemini-backed generator. baseURL is optional.
func NewGeminiGenerator(ctx context.Context, apiKey, baseURL string, opts Options) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, opts: opts}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	temp := float32(g.opts.Temperature)
	topK := float32(geminiTopK)
	topP := float32(geminiTopP)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		TopK:             &topK,
		TopP:             &topP,
		MaxOutputTokens:  int32(g.opts.MaxTokens),
		ResponseMIMEType: "application/json",
	}

	result, err := g.client.Models.GenerateContent(ctx, g.opts.Model, genai.Text(prompt), config)
	if err != nil {
		return "", mapGeminiError(err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (g *GeminiGenerator) Model() string {
	return g.opts.Model
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return classify("gemini", apiErr.Code, err)
	}
	return classify("gemini", 0, err)
}

var _ domain.TextGenerator = (*GeminiGenerator)(nil)
