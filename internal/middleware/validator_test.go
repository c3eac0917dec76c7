package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProjectID(t *testing.T) {
	valid := []string{"PRJ-A1B2C3D4", "abc", "a_b-c", strings.Repeat("x", 64)}
	for _, id := range valid {
		assert.NoError(t, ValidateProjectID(id), id)
	}

	invalid := []string{"", "PRJ A1B2", "../etc", "id;drop", strings.Repeat("x", 65)}
	for _, id := range invalid {
		assert.Error(t, ValidateProjectID(id), id)
	}
}

func TestValidateUploadFilename(t *testing.T) {
	assert.NoError(t, ValidateUploadFilename("fleet-report.pdf"))
	assert.NoError(t, ValidateUploadFilename("Q1 planning (final).docx"))

	invalid := []string{
		"",
		"../../etc/passwd",
		"dir/file.pdf",
		"dir\\file.pdf",
		"bad\x00name.pdf",
		"line\nbreak.pdf",
		strings.Repeat("a", 256),
	}
	for _, name := range invalid {
		assert.Error(t, ValidateUploadFilename(name), "%q", name)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeString("  hello world  "))
	assert.Equal(t, "abc", SanitizeString("a\x00b\x01c"))
	assert.Equal(t, "tab\tand\nnewline", SanitizeString("tab\tand\nnewline"))
}

func TestValidateUploadCount(t *testing.T) {
	assert.Error(t, ValidateUploadCount(0))
	assert.NoError(t, ValidateUploadCount(1))
	assert.NoError(t, ValidateUploadCount(3))
	assert.Error(t, ValidateUploadCount(4))
}
