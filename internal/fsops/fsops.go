package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// IsOSBacked reports whether fs reads the real filesystem
func IsOSBacked(fsys afero.Fs) bool {
	switch fsys.(type) {
	case *afero.OsFs, afero.OsFs:
		return true
	}
	return false
}

// ReadDirNames lists the entry names of a directory in lexical order
func ReadDirNames(fs afero.Fs, dir string) ([]string, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Canonical returns path with symbolic links resolved. Filesystems without
// link support only get the path cleaned and made absolute.
func Canonical(fs afero.Fs, path string) (string, error) {
	if IsOSBacked(fs) {
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return "", fmt.Errorf("resolve symlinks: %w", err)
		}
		return filepath.Abs(resolved)
	}

	if _, err := fs.Stat(path); err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}
	return filepath.Abs(path)
}

// IsPermission reports whether err was caused by missing permissions
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
