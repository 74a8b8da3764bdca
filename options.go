package toolprobe

import (
	"time"

	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/quantmind-br/toolprobe/internal/helpers"
	"github.com/quantmind-br/toolprobe/internal/probe"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Option customizes a Finder
type Option func(*options)

type options struct {
	searchPath    *string
	names         []string
	extraPatterns []string
	timeout       time.Duration
	parallelism   int
	cacheSize     int
	logger        *zerolog.Logger
	prober        core.Prober
	runner        helpers.CommandRunner
	fs            afero.Fs
}

func defaultOptions() options {
	return options{
		names:       []string{"python", "python3"},
		timeout:     probe.DefaultTimeout,
		parallelism: 1,
	}
}

// WithSearchPath replaces $PATH as the list of directories to scan. An
// empty value finds nothing.
func WithSearchPath(searchPath string) Option {
	return func(o *options) { o.searchPath = &searchPath }
}

// WithNames sets the executable family names, e.g. "python3" or "pypy3".
func WithNames(names ...string) Option {
	return func(o *options) { o.names = append([]string(nil), names...) }
}

// WithExtraPatterns adds file name regular expressions to the defaults
func WithExtraPatterns(exprs ...string) Option {
	return func(o *options) { o.extraPatterns = append(o.extraPatterns, exprs...) }
}

// WithTimeout bounds each interpreter invocation
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger; the default discards everything
func WithLogger(log *zerolog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithParallelism probes up to n candidates at once. Results keep
// candidate order.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithCacheSize remembers up to n successful probes for the lifetime of the
// Finder. Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithProber replaces process execution. Parse still runs on whatever p
// returns, so a custom Prober only has to supply the two outputs.
func WithProber(p Prober) Option {
	return func(o *options) { o.prober = p }
}

// WithCommandRunner replaces how the default prober starts processes
func WithCommandRunner(r CommandRunner) Option {
	return func(o *options) { o.runner = r }
}

// WithFs replaces the filesystem used for discovery
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}
