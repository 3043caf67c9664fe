// Package exercisegen builds exercise prompts from a learning profile and
// turns the text generator's answers into validated exercises.
package exercisegen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/retry"

	"go.uber.org/zap"
)

// Request describes one generation call. Level and Type are already decided.
type Request struct {
	Course   domain.Course
	Quantity int
	Level    domain.Level
	Type     string
	Profile  domain.LearningProfile
}

// Generator asks the text generator for exercises under a retry policy.
// Provider errors and unusable output are both retried.
type Generator struct {
	text   domain.TextGenerator
	parser *Parser
	policy retry.Policy
	logger *zap.Logger
}

func NewGenerator(text domain.TextGenerator, parser *Parser, policy retry.Policy, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{text: text, parser: parser, policy: policy, logger: logger}
}

// Generate returns the parsed exercises, or an UPSTREAM_FAILURE DomainError
// carrying the last error once the policy gives up.
func (g *Generator) Generate(ctx context.Context, req Request) ([]ParsedExercise, error) {
	prompt := BuildPrompt(req.Course, req.Quantity, req.Level, req.Type, req.Profile)

	policy := g.policy
	policy.OnRetry = func(attempt int, err error, wait time.Duration) {
		g.logger.Warn("Exercise generation attempt failed, retrying",
			zap.String("estudiante_id", req.Profile.EstudianteID),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", policy.MaxAttempts),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	var exercises []ParsedExercise
	err := policy.Do(ctx, func(ctx context.Context, attempt int) error {
		raw, err := g.text.Generate(ctx, prompt)
		if err != nil {
			if retry.IsPermanent(err) {
				g.logger.Warn("Text provider rejected the request, not retrying",
					zap.String("model", g.text.Model()),
					zap.Int("attempt", attempt),
					zap.Error(err))
			}
			return err
		}
		parsed, err := g.parser.Parse(raw)
		if err != nil {
			g.logger.Debug("Unusable model output", zap.Int("attempt", attempt), zap.String("raw", truncate(raw, 500)))
			return err
		}
		exercises = parsed
		return nil
	})
	if err != nil {
		var exhausted *retry.ExhaustedError
		if errors.As(err, &exhausted) {
			err = exhausted.Err
		}
		g.logger.Error("Exercise generation failed",
			zap.String("estudiante_id", req.Profile.EstudianteID),
			zap.String("model", g.text.Model()),
			zap.Error(err))
		return nil, domain.NewUpstreamError(err)
	}

	if req.Quantity > 0 && len(exercises) > req.Quantity {
		exercises = exercises[:req.Quantity]
	}
	return exercises, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s... (%d bytes)", s[:n], len(s))
}
