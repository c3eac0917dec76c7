package modeljson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/ai-readiness/internal/domain/ai"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "fenced code block",
			raw:  "Sure! ```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "object wrapped in prose",
			raw:  "Here is the analysis you asked for:\n{\"strengths\":[\"PM presence\"]}\nLet me know if you need more.",
			want: `{"strengths":["PM presence"]}`,
		},
		{
			name: "array wrapped in prose",
			raw:  "Result: [{\"objective\":\"cut cost\"}] - thanks!",
			want: `[{"objective":"cut cost"}]`,
		},
		{
			name: "array containing objects picks the earlier opening bracket",
			raw:  "```json\n[ {\"useCase\":\"forecasting\"} ]\n```",
			want: `[ {"useCase":"forecasting"} ]`,
		},
		{
			name: "object containing arrays",
			raw:  "ok {\"gaps\":[\"ml\",\"ops\"]} done",
			want: `{"gaps":["ml","ops"]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestExtractFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no brackets at all", raw: "Sorry, I cannot help with that request."},
		{name: "empty input", raw: ""},
		{name: "opening bracket only", raw: "here it comes: {\"a\":1"},
		{name: "closing before opening", raw: "} and later ["},
		{name: "invalid JSON between brackets", raw: "{not json}"},
		{name: "two top-level values", raw: "[1,2] and also {\"a\":1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.raw)
			require.Error(t, err)

			var malformed *ai.MalformedOutputError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.raw, malformed.Raw, "raw reply must be preserved for diagnostics")
		})
	}
}

func TestExtractorImplementsPort(t *testing.T) {
	var _ ai.OutputParser = Extractor{}

	got, err := Extractor{}.Extract(`{"a":1}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))
}
