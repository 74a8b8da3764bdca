//go:build windows

package helpers

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func hasExecutePermission(name string, _ fs.FileMode) bool {
	ext := filepath.Ext(name)
	for _, suffix := range ExecutableSuffixes() {
		if strings.EqualFold(ext, suffix) {
			return true
		}
	}
	return false
}

// ExecutableSuffixes lists file extensions that mark executables, taken
// from PATHEXT.
func ExecutableSuffixes() []string {
	pathext := os.Getenv("PATHEXT")
	if pathext == "" {
		return []string{".com", ".exe", ".bat", ".cmd"}
	}
	var out []string
	for _, ext := range strings.Split(strings.ToLower(pathext), ";") {
		if ext != "" && ext[0] == '.' {
			out = append(out, ext)
		}
	}
	return out
}

// CanExecute reports whether path carries an executable extension.
func CanExecute(path string) bool {
	return hasExecutePermission(path, 0)
}
