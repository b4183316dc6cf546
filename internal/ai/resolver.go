package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrProviderExhausted indicates every spec in the fallback chain failed to
// produce a working client.
var ErrProviderExhausted = errors.New("all providers exhausted")

// ExhaustedError carries the per-spec failure reasons collected during
// resolution. It unwraps to ErrProviderExhausted.
type ExhaustedError struct {
	Reasons []string
}

func (e *ExhaustedError) Error() string {
	if len(e.Reasons) == 0 {
		return "all providers exhausted: no specs configured"
	}
	return fmt.Sprintf("all providers exhausted: %s", strings.Join(e.Reasons, "; "))
}

func (e *ExhaustedError) Unwrap() error {
	return ErrProviderExhausted
}

// buildClient is swapped out by tests to observe construction attempts.
var buildClient = newClient

// Resolve iterates specs in order and returns the client built from the first
// spec whose construction succeeds. Construction failures are logged and
// accumulated; exhaustion returns an ExhaustedError with every reason.
// Resolution is deterministic for a given credential environment.
func Resolve(ctx context.Context, specs []ProviderSpec, logger *slog.Logger) (CompletionClient, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var reasons []string
	for _, spec := range specs {
		client, err := buildClient(ctx, spec)
		if err != nil {
			logger.Warn("provider unavailable",
				"provider", spec.Provider, "model", spec.Model, "error", err)
			reasons = append(reasons, fmt.Sprintf("%s/%s: %v", spec.Provider, spec.Model, err))
			continue
		}
		logger.Info("provider selected", "provider", spec.Provider, "model", spec.Model)
		return client, nil
	}

	return nil, &ExhaustedError{Reasons: reasons}
}

func newClient(ctx context.Context, spec ProviderSpec) (CompletionClient, error) {
	switch spec.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, spec)
	default:
		return NewChatClient(spec)
	}
}
