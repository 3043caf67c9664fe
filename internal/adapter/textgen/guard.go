package textgen

import (
	"context"
	"fmt"
	"time"

	"edu-perfil/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Guarded throttles calls to the wrapped generator and bounds each call with
// a timeout.
type Guarded struct {
	inner   domain.TextGenerator
	limiter *rate.Limiter
	timeout time.Duration
	logger  *zap.Logger
}

// WithGuard wraps g. A non-positive ratePerSecond disables throttling and a
// non-positive timeout disables the per-call deadline.
func WithGuard(g domain.TextGenerator, ratePerSecond float64, timeout time.Duration, logger *zap.Logger) *Guarded {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guarded{
		inner:   g,
		limiter: rate.NewLimiter(limit, 1),
		timeout: timeout,
		logger:  logger,
	}
}

func (g *Guarded) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for text generation slot: %w", err)
	}

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.inner.Generate(callCtx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		g.logger.Warn("Text generation call failed",
			zap.String("model", g.inner.Model()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return "", err
	}

	g.logger.Debug("Text generation call succeeded",
		zap.String("model", g.inner.Model()),
		zap.Duration("elapsed", elapsed),
		zap.Int("response_len", len(text)))
	return text, nil
}

func (g *Guarded) Model() string {
	return g.inner.Model()
}

var _ domain.TextGenerator = (*Guarded)(nil)
