package probe

import (
	"context"
	"sync"
	"time"

	"github.com/quantmind-br/toolprobe/internal/core"
)

// FakeProber returns scripted output per candidate path. Safe for
// concurrent use.
type FakeProber struct {
	mu      sync.Mutex
	outputs map[string]fakeResult
	calls   []string

	// Delay is applied before every probe and honors ctx
	Delay time.Duration
}

type fakeResult struct {
	flags         string
	introspection string
	err           error
}

// NewFakeProber creates an empty FakeProber
func NewFakeProber() *FakeProber {
	return &FakeProber{outputs: make(map[string]fakeResult)}
}

// Set scripts the two outputs returned for path
func (f *FakeProber) Set(path, flags, introspection string) *FakeProber {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[path] = fakeResult{flags: flags, introspection: introspection}
	return f
}

// Fail scripts an error for path
func (f *FakeProber) Fail(path string, err error) *FakeProber {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[path] = fakeResult{err: err}
	return f
}

// Calls returns the probed paths in call order
func (f *FakeProber) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Probe implements core.Prober. Unscripted paths fail with SpawnFailed.
func (f *FakeProber) Probe(ctx context.Context, c core.Candidate) (*core.RawOutput, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c.Path)
	res, ok := f.outputs[c.Path]
	f.mu.Unlock()

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !ok {
		return nil, &core.ProbeError{Kind: core.ErrSpawnFailed, Candidate: c.Path}
	}
	if res.err != nil {
		return nil, res.err
	}
	return &core.RawOutput{
		Candidate:     c,
		Flags:         core.Invocation{Args: scriptArgs(flagsScript), Stdout: res.flags},
		Introspection: core.Invocation{Args: scriptArgs(introspectionScript), Stdout: res.introspection},
	}, nil
}
