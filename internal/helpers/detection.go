package helpers

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	familySuffixRegex  = regexp.MustCompile(`^\d+(?:\.\d+){0,2}$`)
	trailingVersionRgx = regexp.MustCompile(`(\d+(?:\.\d+){0,2})$`)
)

// IsExecutable reports whether a directory entry looks runnable on this
// platform. mode must describe the link target, not the link itself.
func IsExecutable(name string, mode fs.FileMode) bool {
	if !mode.IsRegular() {
		return false
	}
	return hasExecutePermission(name, mode)
}

// TrimExecutableSuffix removes a platform executable extension such as
// ".exe" from name.
func TrimExecutableSuffix(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return name
	}
	for _, suffix := range ExecutableSuffixes() {
		if strings.EqualFold(ext, suffix) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// VersionHint guesses the interpreter version encoded in an executable name:
//   - python3.11 -> "3.11"
//   - python3 -> "3"
//   - pypy3.10.exe -> "3.10"
//   - python -> ""
func VersionHint(name, family string) string {
	base := strings.ToLower(TrimExecutableSuffix(filepath.Base(name)))
	family = strings.ToLower(family)

	if family != "" && strings.HasPrefix(base, family) {
		rest := strings.TrimPrefix(base, family)
		if rest == "" {
			return ""
		}
		if familySuffixRegex.MatchString(rest) {
			return rest
		}
	}

	if m := trailingVersionRgx.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	return ""
}
