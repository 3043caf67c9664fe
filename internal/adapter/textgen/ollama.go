package textgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"edu-perfil/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// LangchainGenerator runs prompts through a langchaingo model. It backs the
// local Ollama provider.
type LangchainGenerator struct {
	llm  llms.Model
	opts Options
}

// NewOllamaGenerator connects to an Ollama server.
func NewOllamaGenerator(serverURL string, httpClient *http.Client, opts Options) (*LangchainGenerator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	ollamaOpts := []ollama.Option{
		ollama.WithServerURL(serverURL),
		ollama.WithModel(opts.Model),
		ollama.WithFormat("json"),
	}
	if httpClient != nil {
		ollamaOpts = append(ollamaOpts, ollama.WithHTTPClient(httpClient))
	}

	llm, err := ollama.New(ollamaOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
	}
	return NewLangchainGenerator(llm, opts), nil
}

// NewLangchainGenerator wraps any langchaingo model.
func NewLangchainGenerator(llm llms.Model, opts Options) *LangchainGenerator {
	return &LangchainGenerator{llm: llm, opts: opts}
}

func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	callOpts := []llms.CallOption{llms.WithTemperature(g.opts.Temperature)}
	if g.opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(g.opts.MaxTokens))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, callOpts...)
	if err != nil {
		return "", classify("ollama", 0, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (g *LangchainGenerator) Model() string {
	return g.opts.Model
}

var _ domain.TextGenerator = (*LangchainGenerator)(nil)
