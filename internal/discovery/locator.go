package discovery

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/quantmind-br/toolprobe/internal/fsops"
	"github.com/quantmind-br/toolprobe/internal/helpers"
	"github.com/quantmind-br/toolprobe/internal/logging"
	"github.com/quantmind-br/toolprobe/internal/security"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options configures a Locator
type Options struct {
	// SearchPath is a list-separated set of directories. It is used as is;
	// an empty value yields no candidates.
	SearchPath string
	// Patterns selects file names; defaults to DefaultPatterns("python", "python3")
	Patterns *PatternSet
	// Fs defaults to the OS filesystem
	Fs     afero.Fs
	Logger *zerolog.Logger
}

// Locator enumerates interpreter candidates on a search path. It only reads
// the filesystem and never executes anything.
type Locator struct {
	searchPath  string
	patterns    *PatternSet
	fs          afero.Fs
	checkAccess bool
	log         *zerolog.Logger
}

// NewLocator creates a Locator
func NewLocator(opts Options) (*Locator, error) {
	patterns := opts.Patterns
	if patterns == nil {
		var err error
		if patterns, err = DefaultPatterns("python", "python3"); err != nil {
			return nil, err
		}
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	l := &Locator{
		searchPath:  opts.SearchPath,
		patterns:    patterns,
		fs:          fs,
		checkAccess: fsops.IsOSBacked(fs),
		log:         logging.Component(opts.Logger, "discovery"),
	}
	l.log.Debug().Int("patterns", patterns.Len()).Str("search_path", opts.SearchPath).Msg("locator ready")
	return l, nil
}

// SearchPath returns the search path this locator scans
func (l *Locator) SearchPath() string { return l.searchPath }

// Candidates returns a lazy sequence of candidates in search-path order.
// Each range over the sequence rescans the filesystem. The error slot is
// only used for a terminal DiscoveryError or context cancellation.
func (l *Locator) Candidates(ctx context.Context) iter.Seq2[core.Candidate, error] {
	return func(yield func(core.Candidate, error) bool) {
		if err := security.ValidateSearchPath(l.searchPath); err != nil {
			yield(core.Candidate{}, &core.DiscoveryError{Kind: core.ErrPathUnreadable, SearchPath: l.searchPath, Err: err})
			return
		}

		dirs := l.directories()
		seen := make(map[string]struct{})
		order, denied := 0, 0

		for _, dir := range dirs {
			if err := ctx.Err(); err != nil {
				yield(core.Candidate{}, err)
				return
			}

			names, err := fsops.ReadDirNames(l.fs, dir)
			if err != nil {
				if fsops.IsPermission(err) {
					denied++
				}
				l.log.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
				continue
			}

			for _, name := range names {
				c, ok := l.inspect(dir, name, true)
				if !ok {
					continue
				}
				if _, dup := seen[c.Canonical]; dup {
					l.log.Debug().Str("path", c.Path).Str("canonical", c.Canonical).Msg("skipping duplicate candidate")
					continue
				}
				seen[c.Canonical] = struct{}{}

				c.Order = order
				order++
				if !yield(c, nil) {
					return
				}
			}
		}

		if len(dirs) > 0 && denied == len(dirs) {
			yield(core.Candidate{}, &core.DiscoveryError{
				Kind:       core.ErrPathUnreadable,
				SearchPath: l.searchPath,
				Err:        fmt.Errorf("permission denied on all %d search path entries", denied),
			})
		}
	}
}

// List collects every candidate eagerly.
func (l *Locator) List(ctx context.Context) ([]core.Candidate, error) {
	var out []core.Candidate
	for c, err := range l.Candidates(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Resolve turns an explicit interpreter name or path into a candidate.
// Bare names are looked up on the search path, first directory first.
func (l *Locator) Resolve(nameOrPath string) (core.Candidate, error) {
	if err := security.ValidatePath(nameOrPath); err != nil {
		return core.Candidate{}, err
	}

	if strings.ContainsAny(nameOrPath, `/\`) {
		path, err := filepath.Abs(nameOrPath)
		if err != nil {
			return core.Candidate{}, err
		}
		c, ok := l.inspect(filepath.Dir(path), filepath.Base(path), false)
		if !ok {
			return core.Candidate{}, fmt.Errorf("%s is not an executable file", nameOrPath)
		}
		return c, nil
	}

	for _, dir := range l.directories() {
		for _, name := range l.nameVariants(nameOrPath) {
			if c, ok := l.inspect(dir, name, false); ok {
				return c, nil
			}
		}
	}
	return core.Candidate{}, fmt.Errorf("interpreter %q not found in search path", nameOrPath)
}

// inspect builds a candidate for dir/name if it is an executable. When
// requirePattern is set the name must also match the pattern set.
func (l *Locator) inspect(dir, name string, requirePattern bool) (core.Candidate, bool) {
	pattern, matched := l.patterns.Match(name)
	if requirePattern && !matched {
		return core.Candidate{}, false
	}

	path := filepath.Join(dir, name)
	info, err := l.fs.Stat(path)
	if err != nil {
		l.log.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
		return core.Candidate{}, false
	}
	if !helpers.IsExecutable(name, info.Mode()) {
		return core.Candidate{}, false
	}
	if l.checkAccess && !helpers.CanExecute(path) {
		l.log.Debug().Str("path", path).Msg("skipping entry without execute access")
		return core.Candidate{}, false
	}

	canonical, err := fsops.Canonical(l.fs, path)
	if err != nil {
		l.log.Debug().Err(err).Str("path", path).Msg("skipping entry that cannot be resolved")
		return core.Candidate{}, false
	}

	return core.Candidate{
		Path:        path,
		Canonical:   canonical,
		Name:        name,
		VersionHint: helpers.VersionHint(name, pattern.Family),
	}, true
}

func (l *Locator) nameVariants(name string) []string {
	variants := []string{name}
	for _, suffix := range helpers.ExecutableSuffixes() {
		variants = append(variants, name+suffix)
	}
	return variants
}

// directories returns absolute, cleaned, de-duplicated search path entries
// in order. Empty entries are dropped.
func (l *Locator) directories() []string {
	var dirs []string
	seen := make(map[string]struct{})
	for _, entry := range filepath.SplitList(l.searchPath) {
		if entry == "" {
			continue
		}
		dir := security.SanitizePath(entry)
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

// SearchPathFromEnv returns $PATH
func SearchPathFromEnv() string {
	return os.Getenv("PATH")
}
