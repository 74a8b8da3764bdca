package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/quantmind-br/toolprobe/internal/helpers"
	"github.com/quantmind-br/toolprobe/internal/logging"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds each interpreter invocation
const DefaultTimeout = 10 * time.Second

// Options configures an ExecProber
type Options struct {
	Runner  helpers.CommandRunner
	Timeout time.Duration
	Logger  *zerolog.Logger
}

// ExecProber runs candidates as child processes
type ExecProber struct {
	runner  helpers.CommandRunner
	timeout time.Duration
	log     *zerolog.Logger
}

// NewExecProber creates an ExecProber. A nil runner uses the OS.
func NewExecProber(opts Options) *ExecProber {
	runner := opts.Runner
	if runner == nil {
		runner = helpers.NewOSCommandRunner()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExecProber{
		runner:  runner,
		timeout: timeout,
		log:     logging.Component(opts.Logger, "probe"),
	}
}

// Timeout returns the per-invocation limit
func (p *ExecProber) Timeout() time.Duration { return p.timeout }

// Probe runs the flags and introspection scripts against the candidate.
// Failures are *core.ProbeError; cancellation of ctx is returned as is.
func (p *ExecProber) Probe(ctx context.Context, c core.Candidate) (*core.RawOutput, error) {
	p.log.Debug().Str("path", c.Path).Msg("probing candidate")

	flags, err := p.run(ctx, c, flagsScript)
	if err != nil {
		return nil, err
	}
	info, err := p.run(ctx, c, introspectionScript)
	if err != nil {
		return nil, err
	}

	p.log.Debug().
		Str("path", c.Path).
		Dur("flags_took", flags.Duration).
		Dur("introspection_took", info.Duration).
		Msg("probe finished")

	return &core.RawOutput{Candidate: c, Flags: flags, Introspection: info}, nil
}

func (p *ExecProber) run(ctx context.Context, c core.Candidate, script string) (core.Invocation, error) {
	if err := ctx.Err(); err != nil {
		return core.Invocation{}, err
	}

	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	args := scriptArgs(script)
	start := time.Now()
	stdout, stderr, err := p.runner.RunCommandWithOutput(runCtx, c.Path, args...)
	inv := core.Invocation{
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: p.runner.GetExitCode(err),
		Duration: time.Since(start),
	}
	if err == nil {
		return inv, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return inv, ctxErr
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return inv, &core.ProbeError{
			Kind:      core.ErrTimeout,
			Candidate: c.Path,
			Stderr:    stderr,
			Err:       fmt.Errorf("no result after %s", p.timeout),
		}
	}

	var exitErr *exec.ExitError
	if inv.ExitCode > 0 || errors.As(err, &exitErr) {
		return inv, &core.ProbeError{
			Kind:      core.ErrNonZeroExit,
			Candidate: c.Path,
			Status:    inv.ExitCode,
			Stderr:    stderr,
		}
	}

	return inv, &core.ProbeError{Kind: core.ErrSpawnFailed, Candidate: c.Path, Err: err}
}
