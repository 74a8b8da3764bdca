package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/core"
)

// usageError marks bad flags or arguments
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return core.ExitSuccess
	case errors.Is(err, context.Canceled):
		return core.ExitInterrupted
	case errors.As(err, &usage):
		return core.ExitInvalidArgs
	case errors.Is(err, toolprobe.ErrNoMatch):
		return core.ExitNoMatch
	case errors.Is(err, toolprobe.ErrPathUnreadable):
		return core.ExitDiscovery
	default:
		return core.ExitGeneral
	}
}
