package core

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Typed errors below report one of these through errors.Is.
var (
	ErrPathUnreadable = errors.New("search path unreadable")

	ErrTimeout     = errors.New("probe timed out")
	ErrNonZeroExit = errors.New("probe exited with non-zero status")
	ErrSpawnFailed = errors.New("probe could not be started")

	ErrMalformedFlags   = errors.New("malformed flags output")
	ErrMalformedVersion = errors.New("malformed version")
	ErrMissingField     = errors.New("missing field")
	ErrMalformedField   = errors.New("malformed field")

	ErrNoMatch = errors.New("no interpreter matched")
)

// DiscoveryError means candidates could not be enumerated at all.
type DiscoveryError struct {
	Kind       error
	SearchPath string
	Err        error
}

func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

func (e *DiscoveryError) Is(target error) bool { return target == e.Kind }
func (e *DiscoveryError) Unwrap() error        { return e.Err }

// ProbeError describes why one candidate could not be probed.
type ProbeError struct {
	Kind      error
	Candidate string
	Status    int
	Stderr    string
	Err       error
}

func (e *ProbeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Candidate, e.Kind)
	if e.Kind == ErrNonZeroExit {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		fmt.Fprintf(&b, "\nstderr: %s", stderr)
	}
	return b.String()
}

func (e *ProbeError) Is(target error) bool { return target == e.Kind }
func (e *ProbeError) Unwrap() error        { return e.Err }

// ParseError describes why probe output could not be turned into a Config.
type ParseError struct {
	Kind  error
	Field string // for MissingField and MalformedField
	Input string // offending token or value, if any
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Field != "" {
		msg += " " + e.Field
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" %q", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Is(target error) bool { return target == e.Kind }
func (e *ParseError) Unwrap() error        { return e.Err }

// Rejection records why a candidate was skipped during selection.
// Err is nil when the candidate probed fine but the predicate rejected it.
type Rejection struct {
	Candidate Candidate
	Err       error
}

// Reason returns a one-line explanation for reports.
func (r Rejection) Reason() string {
	if r.Err == nil {
		return "did not satisfy predicate"
	}
	msg := r.Err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

// SelectionError is returned when no candidate satisfied the predicate.
type SelectionError struct {
	Kind       error
	Tried      int
	Rejections []Rejection
}

func (e *SelectionError) Error() string {
	if e.Tried == 0 {
		return fmt.Sprintf("%v: no candidates found", e.Kind)
	}
	failed := 0
	for _, r := range e.Rejections {
		if r.Err != nil {
			failed++
		}
	}
	return fmt.Sprintf("%v: tried %d candidate(s), %d failed to probe or parse", e.Kind, e.Tried, failed)
}

func (e *SelectionError) Is(target error) bool { return target == e.Kind }
