//go:build unix

package discovery

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinPath(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

func newMemFs(t *testing.T, files map[string]os.FileMode) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, mode := range files {
		require.NoError(t, mem.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(mem, path, []byte("#!/bin/sh\n"), mode))
	}
	return mem
}

func collect(t *testing.T, l *Locator) []core.Candidate {
	t.Helper()
	out, err := l.List(context.Background())
	require.NoError(t, err)
	return out
}

func paths(cs []core.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Path
	}
	return out
}

// deniedFs refuses to open the listed directories.
type deniedFs struct {
	afero.Fs
	denied map[string]bool
}

func (d *deniedFs) Open(name string) (afero.File, error) {
	if d.denied[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return d.Fs.Open(name)
}

func TestLocator_SearchPathOrder(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/opt/py/bin/python3":   0o755,
		"/usr/bin/python":       0o755,
		"/usr/bin/python3":      0o755,
		"/usr/bin/python3.11":   0o755,
		"/usr/local/bin/python": 0o755,
	})

	l, err := NewLocator(Options{SearchPath: joinPath("/usr/local/bin", "/usr/bin", "/opt/py/bin"), Fs: mem})
	require.NoError(t, err)

	got := collect(t, l)
	assert.Equal(t, []string{
		"/usr/local/bin/python",
		"/usr/bin/python",
		"/usr/bin/python3",
		"/usr/bin/python3.11",
		"/opt/py/bin/python3",
	}, paths(got))

	for i, c := range got {
		assert.Equal(t, i, c.Order)
		assert.Equal(t, filepath.Base(c.Path), c.Name)
		assert.Equal(t, c.Path, c.Canonical)
	}
	assert.Equal(t, "3.11", got[3].VersionHint)
	assert.Equal(t, "3", got[2].VersionHint)
	assert.Empty(t, got[0].VersionHint)
}

func TestLocator_Filters(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/bin/python3":        0o755,
		"/bin/python3-config": 0o755,
		"/bin/python3.12":     0o644, // not executable
		"/bin/pythonista":     0o755,
		"/bin/ruby":           0o755,
	})
	require.NoError(t, mem.MkdirAll("/bin/python3.13", 0o755)) // directory

	l, err := NewLocator(Options{SearchPath: "/bin", Fs: mem})
	require.NoError(t, err)

	assert.Equal(t, []string{"/bin/python3"}, paths(collect(t, l)))
}

func TestLocator_SkipsMissingEmptyAndRepeatedEntries(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/usr/bin/python3": 0o755,
	})

	l, err := NewLocator(Options{SearchPath: joinPath("", "/does/not/exist", "/usr/bin", "/usr/bin/", ""), Fs: mem})
	require.NoError(t, err)

	assert.Equal(t, []string{"/usr/bin/python3"}, paths(collect(t, l)))
}

func TestLocator_EmptySearchPath(t *testing.T) {
	l, err := NewLocator(Options{SearchPath: "", Fs: afero.NewMemMapFs()})
	require.NoError(t, err)

	assert.Empty(t, collect(t, l))
}

func TestLocator_Restartable(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/usr/bin/python":  0o755,
		"/usr/bin/python3": 0o755,
	})
	l, err := NewLocator(Options{SearchPath: "/usr/bin", Fs: mem})
	require.NoError(t, err)

	first := collect(t, l)
	second := collect(t, l)
	assert.Equal(t, first, second)
}

func TestLocator_EarlyStop(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/usr/bin/python":  0o755,
		"/usr/bin/python3": 0o755,
	})
	l, err := NewLocator(Options{SearchPath: "/usr/bin", Fs: mem})
	require.NoError(t, err)

	count := 0
	for c, err := range l.Candidates(context.Background()) {
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/python", c.Path)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestLocator_InvalidSearchPath(t *testing.T) {
	l, err := NewLocator(Options{SearchPath: "/usr/bin\x00", Fs: afero.NewMemMapFs()})
	require.NoError(t, err)

	_, err = l.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrPathUnreadable))

	var derr *core.DiscoveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "/usr/bin\x00", derr.SearchPath)
}

func TestLocator_AllEntriesDenied(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/a/python3": 0o755,
		"/b/python3": 0o755,
	})
	denied := &deniedFs{Fs: mem, denied: map[string]bool{"/a": true, "/b": true}}

	l, err := NewLocator(Options{SearchPath: joinPath("/a", "/b"), Fs: denied})
	require.NoError(t, err)

	_, err = l.List(context.Background())
	assert.ErrorIs(t, err, core.ErrPathUnreadable)
}

func TestLocator_SomeEntriesDenied(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/a/python3": 0o755,
		"/b/python3": 0o755,
	})
	denied := &deniedFs{Fs: mem, denied: map[string]bool{"/a": true}}

	l, err := NewLocator(Options{SearchPath: joinPath("/a", "/b"), Fs: denied})
	require.NoError(t, err)

	assert.Equal(t, []string{"/b/python3"}, paths(collect(t, l)))
}

func TestLocator_ContextCancelled(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{"/usr/bin/python3": 0o755})
	l, err := NewLocator(Options{SearchPath: "/usr/bin", Fs: mem})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocator_CustomPatterns(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/bin/pypy3":          0o755,
		"/bin/pypy3.10":       0o755,
		"/bin/python3":        0o755,
		"/bin/python3.11-dbg": 0o755,
	})

	patterns, err := DefaultPatterns("pypy")
	require.NoError(t, err)
	require.NoError(t, patterns.Add("", "python", `^python3\.\d+-dbg$`))

	l, err := NewLocator(Options{SearchPath: "/bin", Fs: mem, Patterns: patterns})
	require.NoError(t, err)

	got := collect(t, l)
	assert.Equal(t, []string{"/bin/pypy3", "/bin/pypy3.10", "/bin/python3.11-dbg"}, paths(got))
	assert.Equal(t, "3.10", got[1].VersionHint)
}

func TestLocator_Resolve(t *testing.T) {
	mem := newMemFs(t, map[string]os.FileMode{
		"/a/python3":   0o644,
		"/b/python3":   0o755,
		"/b/mypython":  0o755,
		"/c/python3.9": 0o755,
	})
	l, err := NewLocator(Options{SearchPath: joinPath("/a", "/b", "/c"), Fs: mem})
	require.NoError(t, err)

	c, err := l.Resolve("python3")
	require.NoError(t, err)
	assert.Equal(t, "/b/python3", c.Path)

	c, err = l.Resolve("/c/python3.9")
	require.NoError(t, err)
	assert.Equal(t, "3.9", c.VersionHint)

	// explicit names do not need to match a pattern
	c, err = l.Resolve("mypython")
	require.NoError(t, err)
	assert.Equal(t, "/b/mypython", c.Path)

	_, err = l.Resolve("python2")
	assert.Error(t, err)

	_, err = l.Resolve("/a/python3")
	assert.Error(t, err)
}
