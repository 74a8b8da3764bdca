package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCandidatesCmd_JSON(t *testing.T) {
	t.Parallel()
	h := newTestHost(t)

	out, _, err := execute(t, h.root(), "candidates", "-o", "json")
	require.NoError(t, err)

	var got []candidateView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	for i, c := range got {
		assert.Equal(t, i, c.Order)
		assert.Equal(t, h.paths[i], c.Path)
	}
	assert.Equal(t, "3.12", got[3].VersionHint)

	// Discovery never runs anything.
	assert.Empty(t, h.fake.Calls())
}

func TestCandidatesCmd_YAML(t *testing.T) {
	t.Parallel()
	h := newTestHost(t)

	out, _, err := execute(t, h.root(), "candidates", "-o", "yaml")
	require.NoError(t, err)

	var got []candidateView
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 4)
	assert.Equal(t, "pypy3", got[1].Name)
}

func TestCandidatesCmd_Table(t *testing.T) {
	t.Parallel()
	h := newTestHost(t)

	out, _, err := execute(t, h.root(), "candidates")
	require.NoError(t, err)
	assert.Contains(t, out, "RESOLVES TO")
	assert.Contains(t, out, "/opt/b/python3.12")
}

func TestCandidatesCmd_InvalidSearchPath(t *testing.T) {
	t.Parallel()
	h := newTestHost(t)
	h.cfg.Discovery.SearchPath = "/opt/a\x00"

	_, _, err := execute(t, NewCandidatesCmd(h.cfg, h.log, h.opts...))
	require.Error(t, err)
	assert.Equal(t, 4, ExitCode(err))
}
