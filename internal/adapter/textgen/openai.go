package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"edu-perfil/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator calls an OpenAI-compatible chat completions endpoint.
type OpenAIGenerator struct {
	client *openai.Client
	opts   Options
}

// NewOpenAIGenerator creates an OpenAI-backed generator. A non-empty baseURL
// points it at any compatible API.
func NewOpenAIGenerator(apiKey, baseURL string, opts Options) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("openai model name cannot be empty")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIGenerator{client: openai.NewClientWithConfig(config), opts: opts}, nil
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: g.opts.MaxTokens,
		Temperature:         float32(g.opts.Temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", classify("openai", apiErr.HTTPStatusCode, err)
		}
		return "", classify("openai", 0, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *OpenAIGenerator) Model() string {
	return g.opts.Model
}

var _ domain.TextGenerator = (*OpenAIGenerator)(nil)
