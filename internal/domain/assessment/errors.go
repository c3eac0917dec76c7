package assessment

import "errors"

var (
	// ErrNotFound: no submission or report exists for the project.
	// Distinct from storage failures so callers know to (re)generate.
	ErrNotFound = errors.New("not found for this project")

	// ErrInvalidPayload: malformed submission input, rejected before any
	// persistence or LLM call.
	ErrInvalidPayload = errors.New("invalid submission payload")
)
