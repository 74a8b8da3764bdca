package probe

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/spf13/afero"
)

type cacheKey struct {
	canonical string
	size      int64
	modTime   int64
}

// CachingProber remembers successful probes for the lifetime of the process.
// An entry is reused only while the interpreter file keeps its size and
// modification time. Failures are never cached.
type CachingProber struct {
	next  core.Prober
	fs    afero.Fs
	cache *lru.Cache[cacheKey, *core.RawOutput]
}

// NewCachingProber wraps next with an LRU of the given size
func NewCachingProber(next core.Prober, size int, fs afero.Fs) (*CachingProber, error) {
	cache, err := lru.New[cacheKey, *core.RawOutput](size)
	if err != nil {
		return nil, fmt.Errorf("create probe cache: %w", err)
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &CachingProber{next: next, fs: fs, cache: cache}, nil
}

// Probe implements core.Prober
func (p *CachingProber) Probe(ctx context.Context, c core.Candidate) (*core.RawOutput, error) {
	key, ok := p.key(c)
	if ok {
		if raw, hit := p.cache.Get(key); hit {
			out := *raw
			out.Candidate = c
			return &out, nil
		}
	}

	raw, err := p.next.Probe(ctx, c)
	if err != nil {
		return nil, err
	}
	if ok {
		p.cache.Add(key, raw)
	}
	return raw, nil
}

// Len returns the number of cached probes
func (p *CachingProber) Len() int { return p.cache.Len() }

func (p *CachingProber) key(c core.Candidate) (cacheKey, bool) {
	path := c.Canonical
	if path == "" {
		path = c.Path
	}
	info, err := p.fs.Stat(path)
	if err != nil {
		return cacheKey{}, false
	}
	return cacheKey{canonical: path, size: info.Size(), modTime: info.ModTime().UnixNano()}, true
}
