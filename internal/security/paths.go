package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxPathLength is the longest path accepted from the search path.
const MaxPathLength = 4096

// ValidatePath performs general path validation
func ValidatePath(path string) error {
	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null bytes: %q", path)
	}

	// Check for excessive length
	if len(path) > MaxPathLength {
		return fmt.Errorf("path too long: %d characters", len(path))
	}

	if strings.ContainsAny(path, "\n\r") {
		return fmt.Errorf("path contains line breaks: %q", path)
	}

	return nil
}

// ValidateSearchPath checks every entry of a list-separated search path
func ValidateSearchPath(searchPath string) error {
	for _, entry := range filepath.SplitList(searchPath) {
		if err := ValidatePath(entry); err != nil {
			return fmt.Errorf("invalid search path entry: %w", err)
		}
	}
	return nil
}

// SanitizePath sanitizes a file path for safe use
func SanitizePath(path string) string {
	// Clean the path
	cleaned := filepath.Clean(path)

	// Remove null bytes
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")

	return cleaned
}
