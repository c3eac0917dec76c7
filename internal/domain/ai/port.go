package ai

import (
	"context"
	"encoding/json"
)

// Client is the port for the LLM provider.
type Client interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// OutputParser reduces raw model text to a single well-formed JSON value.
// Implementations may be heuristic; callers treat the result as untrusted.
type OutputParser interface {
	Extract(raw string) (json.RawMessage, error)
}
