// Package toolprobe finds installed Python interpreters and reports the
// compiler and linker configuration needed to build against them.
//
// Candidates are taken from the search path in order, each one is run with a
// small introspection script, and the first whose configuration satisfies
// the caller's predicate wins:
//
//	cfg, err := toolprobe.FindInterpreterMatching(ctx, toolprobe.AtLeast(3, 9))
//	if err != nil {
//		return err
//	}
//	fmt.Println(cfg.IncludePaths())
package toolprobe

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/quantmind-br/toolprobe/internal/discovery"
	"github.com/quantmind-br/toolprobe/internal/helpers"
	"github.com/quantmind-br/toolprobe/internal/parser"
	"github.com/quantmind-br/toolprobe/internal/probe"
	"github.com/quantmind-br/toolprobe/internal/selector"
	"github.com/spf13/afero"
)

type (
	Config         = core.Config
	Version        = core.Version
	Constraint     = core.Constraint
	Predicate      = core.Predicate
	Candidate      = core.Candidate
	Implementation = core.Implementation
	Result         = selector.Result

	// Prober runs one candidate and returns its raw output. RawOutput and
	// Invocation let callers outside this module implement it.
	Prober        = core.Prober
	RawOutput     = core.RawOutput
	Invocation    = core.Invocation
	CommandRunner = helpers.CommandRunner

	DiscoveryError = core.DiscoveryError
	ProbeError     = core.ProbeError
	ParseError     = core.ParseError
	SelectionError = core.SelectionError
)

var (
	ErrPathUnreadable   = core.ErrPathUnreadable
	ErrTimeout          = core.ErrTimeout
	ErrNonZeroExit      = core.ErrNonZeroExit
	ErrSpawnFailed      = core.ErrSpawnFailed
	ErrMalformedFlags   = core.ErrMalformedFlags
	ErrMalformedVersion = core.ErrMalformedVersion
	ErrMissingField     = core.ErrMissingField
	ErrMalformedField   = core.ErrMalformedField
	ErrNoMatch          = core.ErrNoMatch
)

const (
	CPython = core.ImplementationCPython
	PyPy    = core.ImplementationPyPy
)

// Predicate helpers
var (
	All              = selector.All
	MajorIs          = selector.MajorIs
	AtLeast          = selector.AtLeast
	ImplementationIs = selector.ImplementationIs
	MatchConstraint  = selector.MatchConstraint
	Static           = selector.Static
)

// ParseVersion parses "3.9", "3.9.7" or "3.13.0rc1"
func ParseVersion(s string) (Version, error) { return core.ParseVersion(s) }

// ParseConstraint parses expressions such as ">=3.8,<4"
func ParseConstraint(s string) (Constraint, error) { return core.ParseConstraint(s) }

// Finder holds one configured discovery pipeline. A Finder is safe for
// sequential reuse; each call rescans the search path.
type Finder struct {
	locator  *discovery.Locator
	prober   core.Prober
	cache    *probe.CachingProber
	selector *selector.Selector
}

// New builds a Finder. Without WithSearchPath, $PATH is read once here.
func New(opts ...Option) (*Finder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	patterns, err := discovery.DefaultPatterns(o.names...)
	if err != nil {
		return nil, fmt.Errorf("interpreter names: %w", err)
	}
	for _, expr := range o.extraPatterns {
		if err := patterns.Add("", "", expr); err != nil {
			return nil, fmt.Errorf("extra pattern: %w", err)
		}
	}

	searchPath := os.Getenv("PATH")
	if o.searchPath != nil {
		searchPath = *o.searchPath
	}

	fs := o.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	locator, err := discovery.NewLocator(discovery.Options{
		SearchPath: searchPath,
		Patterns:   patterns,
		Fs:         fs,
		Logger:     o.logger,
	})
	if err != nil {
		return nil, err
	}

	prober := o.prober
	if prober == nil {
		prober = probe.NewExecProber(probe.Options{Runner: o.runner, Timeout: o.timeout, Logger: o.logger})
	}
	var cache *probe.CachingProber
	if o.cacheSize > 0 {
		if cache, err = probe.NewCachingProber(prober, o.cacheSize, fs); err != nil {
			return nil, err
		}
		prober = cache
	}

	return &Finder{
		locator: locator,
		prober:  prober,
		cache:   cache,
		selector: selector.New(selector.Options{
			Source:      locator,
			Prober:      prober,
			Parallelism: o.parallelism,
			Logger:      o.logger,
		}),
	}, nil
}

// SearchPath returns the directories this Finder scans
func (f *Finder) SearchPath() string { return f.locator.SearchPath() }

// CachedProbes returns how many interpreter outputs this Finder holds in
// memory. It is always zero when the cache is disabled.
func (f *Finder) CachedProbes() int {
	if f.cache == nil {
		return 0
	}
	return f.cache.Len()
}

// Find returns the first interpreter, in search path order, that pred
// accepts. A nil pred accepts any working interpreter.
func (f *Finder) Find(ctx context.Context, pred Predicate) (*Config, error) {
	return f.selector.FindMatching(ctx, pred)
}

// All yields every interpreter pred accepts, in search path order
func (f *Finder) All(ctx context.Context, pred Predicate) iter.Seq2[*Config, error] {
	return f.selector.FindAllMatching(ctx, pred)
}

// Results yields every candidate with its Config or failure reason
func (f *Finder) Results(ctx context.Context) iter.Seq2[Result, error] {
	return f.selector.Results(ctx)
}

// Candidates yields the executables that would be probed, without running
// them.
func (f *Finder) Candidates(ctx context.Context) iter.Seq2[Candidate, error] {
	return f.locator.Candidates(ctx)
}

// Inspect probes one interpreter given by path or by name on the search
// path. Probe and parse failures are returned as is.
func (f *Finder) Inspect(ctx context.Context, nameOrPath string) (*Config, error) {
	c, err := f.locator.Resolve(nameOrPath)
	if err != nil {
		return nil, err
	}
	raw, err := f.prober.Probe(ctx, c)
	if err != nil {
		return nil, err
	}
	return parser.Parse(raw)
}

// FindInterpreterMatching returns the first interpreter on the search path
// whose configuration satisfies pred.
func FindInterpreterMatching(ctx context.Context, pred Predicate, opts ...Option) (*Config, error) {
	f, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return f.Find(ctx, pred)
}

// FindInterpreter returns the first working interpreter on the search path
func FindInterpreter(ctx context.Context, opts ...Option) (*Config, error) {
	return FindInterpreterMatching(ctx, nil, opts...)
}

// ListInterpreters yields the configuration of every working interpreter
// on the search path.
func ListInterpreters(ctx context.Context, opts ...Option) iter.Seq2[*Config, error] {
	return func(yield func(*Config, error) bool) {
		f, err := New(opts...)
		if err != nil {
			yield(nil, err)
			return
		}
		for cfg, err := range f.All(ctx, nil) {
			if !yield(cfg, err) {
				return
			}
		}
	}
}
