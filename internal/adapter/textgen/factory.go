package textgen

import (
	"context"
	"fmt"
	"net/http"

	"edu-perfil/internal/config"
	"edu-perfil/internal/domain"

	"go.uber.org/zap"
)

// New builds the provider selected by cfg.Provider, wrapped with the rate
// limiter and per-call timeout.
func New(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (domain.TextGenerator, error) {
	opts := Options{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}

	var base domain.TextGenerator
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiGenerator(ctx, cfg.APIKey, cfg.BaseURL, opts)
	case "anthropic":
		base, err = NewAnthropicGenerator(cfg.APIKey, cfg.BaseURL, opts)
	case "openai":
		base, err = NewOpenAIGenerator(cfg.APIKey, cfg.BaseURL, opts)
	case "ollama":
		base, err = NewOllamaGenerator(cfg.ServerURL, &http.Client{Timeout: cfg.Timeout}, opts)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithGuard(base, cfg.RatePerSecond, cfg.Timeout, logger), nil
}
