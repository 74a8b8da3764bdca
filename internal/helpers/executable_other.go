//go:build !unix && !windows

package helpers

import "io/fs"

func hasExecutePermission(_ string, mode fs.FileMode) bool {
	return mode&0111 != 0
}

// ExecutableSuffixes lists file extensions that mark executables.
func ExecutableSuffixes() []string {
	return nil
}

// CanExecute falls back to trusting the permission bits.
func CanExecute(_ string) bool {
	return true
}
