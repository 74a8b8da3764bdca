package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultWaitDelay bounds how long Wait keeps draining pipes after the
// process was killed by its context.
const DefaultWaitDelay = 2 * time.Second

// CommandRunner starts child processes. Probes go through it so tests can
// script interpreter output.
type CommandRunner interface {
	// RunCommandWithOutput runs a command and returns both stdout and stderr
	RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

	// GetExitCode extracts the exit code from a command error
	GetExitCode(err error) int
}

// OSCommandRunner is the default implementation using os/exec
type OSCommandRunner struct {
	waitDelay time.Duration
}

// NewOSCommandRunner creates a new OSCommandRunner instance
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{waitDelay: DefaultWaitDelay}
}

// RunCommandWithOutput runs a command and returns both stdout and stderr.
// Stdin is left unset so the child reads from the null device and can never
// wait for interactive input.
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSCommandRunner) RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = r.waitDelay

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		err = fmt.Errorf("command %q failed: %w", name, err)
	}

	return stdout, stderr, err
}

// GetExitCode extracts the exit code from a command error.
// It returns -1 when the process never ran to completion.
func (r *OSCommandRunner) GetExitCode(err error) int {
	return ExitCode(err)
}

// ExitCode extracts the exit code from a command error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
