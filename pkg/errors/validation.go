package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePath validates a user-supplied input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory placeholder ("." or "..")
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	switch filepath.Base(filepath.Clean(path)) {
	case ".", "..", string(filepath.Separator):
		return New(ErrCodeInvalidPath, "path must name a file: %q", path)
	}

	return nil
}

// ValidateOutputFormat checks that format is one of the accepted names.
// Matching is case-insensitive; the accepted list is echoed in the error.
func ValidateOutputFormat(format string, accepted ...string) error {
	for _, a := range accepted {
		if strings.EqualFold(format, a) {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", format, strings.Join(accepted, ", "))
}
