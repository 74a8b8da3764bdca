package toolprobe

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the real probe scripts against an installed python3, if any.
func TestFinder_InstalledPython(t *testing.T) {
	path, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not installed")
	}

	f, err := New(WithSearchPath(filepath.Dir(path)), WithNames("python3"), WithTimeout(30*time.Second))
	require.NoError(t, err)

	cfg, err := f.Inspect(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Version().Major)
	assert.NotEmpty(t, cfg.IncludePaths())
	assert.NotEmpty(t, cfg.Executable())
	assert.Contains(t, []int{4, 8}, cfg.PointerWidth())
}
