package ai

import (
	"context"
)

// CompletionClient is the contract shared by all LLM backends. Every
// implementation returns the same Completion shape regardless of what the
// underlying API responds with.
type CompletionClient interface {
	// Name returns the provider/model identifier, e.g. "groq/llama3-8b-8192".
	Name() string

	// Complete sends one blocking single-turn completion request.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}
