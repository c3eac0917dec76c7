package ai

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// MalformedOutputError means a model reply could not be reduced to valid JSON.
// Raw keeps the full reply for diagnostics; it is logged, never persisted.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }
