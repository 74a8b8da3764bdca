//go:build unix

package helpers

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func hasExecutePermission(_ string, mode fs.FileMode) bool {
	return mode&0111 != 0
}

// ExecutableSuffixes lists file extensions that mark executables.
// Unix relies on permission bits instead.
func ExecutableSuffixes() []string {
	return nil
}

// CanExecute asks the kernel whether the current user may execute path.
// Permission bits alone do not account for ownership or mount options.
func CanExecute(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
