// Package textgen adapts hosted and local LLM providers to
// domain.TextGenerator.
package textgen

import (
	"errors"
	"fmt"
	"net/http"

	"edu-perfil/internal/retry"
)

// Options are the sampling settings shared by every provider.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// ErrEmptyResponse is returned when a provider answered without any text.
var ErrEmptyResponse = errors.New("provider returned no text")

// StatusError is an HTTP-level failure reported by a provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %v", e.Provider, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// classify wraps a provider error. Requests the provider rejected outright
// (bad key, bad model, malformed request) are marked permanent; throttling
// and server errors stay retryable.
func classify(provider string, status int, err error) error {
	if status == 0 {
		return fmt.Errorf("%s request failed: %w", provider, err)
	}
	wrapped := &StatusError{Provider: provider, StatusCode: status, Err: err}
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return retry.Permanent(wrapped)
	}
	return wrapped
}
