package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"edu-perfil/internal/domain"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicGenerator calls the Anthropic Messages API.
type AnthropicGenerator struct {
	client *anthropic.Client
	opts   Options
}

// NewAnthropicGenerator creates an Anthropic-backed generator. The SDK's own
// retries are disabled; the exercise generator owns the retry policy.
func NewAnthropicGenerator(apiKey, baseURL string, opts Options) (*AnthropicGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("anthropic model name cannot be empty")
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(reqOpts...)
	return &AnthropicGenerator{client: &client, opts: opts}, nil
}

func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.opts.Model),
		MaxTokens: int64(g.opts.MaxTokens),
		Messages: []anthropic.MessageParam{
			{
				Role:    anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)},
			},
		},
	}
	if g.opts.Temperature > 0 {
		params.Temperature = anthropic.Float(g.opts.Temperature)
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", classify("anthropic", apiErr.StatusCode, err)
		}
		return "", classify("anthropic", 0, err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", ErrEmptyResponse
}

func (g *AnthropicGenerator) Model() string {
	return g.opts.Model
}

var _ domain.TextGenerator = (*AnthropicGenerator)(nil)
