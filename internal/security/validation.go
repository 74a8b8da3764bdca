package security

import (
	"fmt"
	"regexp"
)

// ValidExecutableNameRegex allows alphanumeric, dash, underscore, plus and dot
var ValidExecutableNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._+-]+$`)

// ValidateExecutableName validates an interpreter family name such as
// "python3" or "pypy" before it is used to build file name patterns.
func ValidateExecutableName(name string) error {
	if name == "" {
		return fmt.Errorf("executable name cannot be empty")
	}

	if len(name) > 255 {
		return fmt.Errorf("executable name too long (max 255 characters)")
	}

	if !ValidExecutableNameRegex.MatchString(name) {
		return fmt.Errorf("invalid executable name %q: must contain only alphanumeric, dash, underscore, plus, or dot characters", name)
	}

	return nil
}

// ValidatePattern checks that a user supplied file name pattern compiles
func ValidatePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern cannot be empty")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}
