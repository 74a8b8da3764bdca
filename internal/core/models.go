package core

import "time"

// Candidate is an executable found on the search path that might be a Python
// interpreter. It has not been executed yet.
type Candidate struct {
	Path        string `json:"path"`                   // Location as found in the search path
	Canonical   string `json:"canonical"`              // Path with symlinks resolved
	Name        string `json:"name"`                   // File name, e.g. "python3.11"
	VersionHint string `json:"version_hint,omitempty"` // Version guessed from the file name
	Order       int    `json:"order"`                  // Position within one discovery pass
}

// Invocation is the captured result of one child process run by the prober.
type Invocation struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// RawOutput is the unparsed text a probe produced for one candidate.
type RawOutput struct {
	Candidate     Candidate
	Flags         Invocation
	Introspection Invocation
}

// Implementation identifies the interpreter implementation
type Implementation string

const (
	ImplementationCPython Implementation = "CPython"
	ImplementationPyPy    Implementation = "PyPy"
	ImplementationUnknown Implementation = "Unknown"
)

// ParseImplementation maps the value reported by platform.python_implementation()
func ParseImplementation(s string) Implementation {
	switch s {
	case "CPython", "cpython":
		return ImplementationCPython
	case "PyPy", "pypy":
		return ImplementationPyPy
	default:
		return ImplementationUnknown
	}
}

// Exit codes used by the CLI
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitInvalidArgs = 2
	ExitNoMatch     = 3
	ExitDiscovery   = 4
	ExitInterrupted = 130
)
