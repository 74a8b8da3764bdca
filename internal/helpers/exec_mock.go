package helpers

import (
	"context"
)

// MockCommandRunner is a mock implementation of CommandRunner for testing
type MockCommandRunner struct {
	RunCommandWithOutputFunc func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
	GetExitCodeFunc          func(err error) int
}

// RunCommandWithOutput implements CommandRunner.RunCommandWithOutput
func (m *MockCommandRunner) RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	if m.RunCommandWithOutputFunc != nil {
		return m.RunCommandWithOutputFunc(ctx, name, args...)
	}
	return "", "", nil
}

// GetExitCode implements CommandRunner.GetExitCode
func (m *MockCommandRunner) GetExitCode(err error) int {
	if m.GetExitCodeFunc != nil {
		return m.GetExitCodeFunc(err)
	}
	return ExitCode(err)
}
