package middleware

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

var projectIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateProjectID checks project identifier format (PRJ-XXXXXXXX or any
// short url-safe token, so legacy identifiers keep working)
func ValidateProjectID(projectID string) error {
	if projectID == "" {
		return fmt.Errorf("project ID cannot be empty")
	}
	if !projectIDPattern.MatchString(projectID) {
		return fmt.Errorf("invalid project ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}

// AllowedUploadTypes are the content types text extraction understands.
// Other types are stored but produce no context summary.
var AllowedUploadTypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// ValidateUploadFilename blocks traversal and control characters in
// client-supplied file names
func ValidateUploadFilename(name string) error {
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if len(name) > 255 {
		return fmt.Errorf("file name too long")
	}
	cleaned := filepath.Clean(name)
	if strings.Contains(cleaned, "..") || strings.ContainsAny(name, "/\\\x00\n\r") {
		return fmt.Errorf("invalid characters in file name")
	}
	return nil
}

// SanitizeString removes null bytes and control characters
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

// ValidateUploadCount caps the number of files per upload request
func ValidateUploadCount(n int) error {
	if n == 0 {
		return fmt.Errorf("no files uploaded")
	}
	if n > 3 {
		return fmt.Errorf("too many files (max 3 per upload)")
	}
	return nil
}
