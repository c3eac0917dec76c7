// Package modeljson extracts the JSON payload embedded in free-text LLM
// replies. Models routinely wrap their answer in prose or fenced code
// blocks; this is a best-effort bracket extraction, not a grammar. It
// assumes the reply contains exactly one well-formed top-level value and
// no unbalanced brackets in the prose before the first / after the last
// structural bracket. Known limitation: a stray bracket of the wrong kind
// in leading prose shifts the slice.
package modeljson

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/bryanwahyu/ai-readiness/internal/domain/ai"
)

// Extractor implements ai.OutputParser with the first-bracket/last-bracket
// heuristic. Stateless; the zero value is ready to use.
type Extractor struct{}

func (Extractor) Extract(raw string) (json.RawMessage, error) {
	return Extract(raw)
}

// Extract slices raw between the earliest opening bracket and the latest
// closing bracket, then parses the slice strictly.
func Extract(raw string) (json.RawMessage, error) {
	start := strings.Index(raw, "{")
	if arr := strings.Index(raw, "["); arr != -1 && (start == -1 || arr < start) {
		start = arr
	}
	if start == -1 {
		return nil, &ai.MalformedOutputError{Raw: raw, Err: errors.New("no opening '{' or '[' in model output")}
	}

	end := strings.LastIndex(raw, "}")
	if arr := strings.LastIndex(raw, "]"); arr > end {
		end = arr
	}
	if end == -1 {
		return nil, &ai.MalformedOutputError{Raw: raw, Err: errors.New("no closing '}' or ']' in model output")}
	}
	if end < start {
		return nil, &ai.MalformedOutputError{Raw: raw, Err: errors.New("closing bracket precedes opening bracket")}
	}

	var payload json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, &ai.MalformedOutputError{Raw: raw, Err: err}
	}
	return payload, nil
}
