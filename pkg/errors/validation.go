package errors

import (
	"strings"
	"unicode"
)

// validFormats is the set of artifact formats the renderer can produce.
var validFormats = map[string]bool{"svg": true, "json": true, "png": true, "pdf": true}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !validFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be 'svg', 'json', 'png', or 'pdf')", format)
	}
	return nil
}

// ValidateStyle validates a visual style name.
func ValidateStyle(style string) error {
	if style != "simple" {
		return New(ErrCodeInvalidStyle, "invalid style: %q (must be 'simple')", style)
	}
	return nil
}

// ValidateDataPath validates a well-log data file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateDataPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "data path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "data path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "data path contains invalid characters")
		}
	}

	return nil
}

// ValidateLithology validates a lithology name from an input file.
// It rejects names that would break downstream labels and legends.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 64 characters
func ValidateLithology(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidRecord, "lithology cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidRecord, "lithology name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRecord, "lithology name contains invalid control characters")
		}
	}

	return nil
}
