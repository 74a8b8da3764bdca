package cmd

import (
	"bytes"
	"testing"

	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureUI redirects the ui package writers for one test. Tests using it
// must not run in parallel.
func captureUI(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := ui.Out, ui.ErrOut
	colors := ui.AreColorsEnabled()
	ui.Out, ui.ErrOut = &out, &errOut
	ui.DisableColors()
	t.Cleanup(func() {
		ui.Out, ui.ErrOut = oldOut, oldErr
		if colors {
			ui.EnableColors()
		}
	})
	return &out, &errOut
}

func TestNewDoctorCmd(t *testing.T) {
	t.Parallel()
	h := newTestHost(t)

	cmd := NewDoctorCmd(h.cfg, h.log, h.opts...)

	assert.NotNil(t, cmd)
	assert.Equal(t, "doctor", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("no-progress"))
}

func TestDoctorCmd_ReportsEveryCandidate(t *testing.T) {
	out, errOut := captureUI(t)
	h := newTestHost(t)

	_, stderr, err := execute(t, h.root(), "doctor")
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "Interpreter Diagnostics")
	assert.Contains(t, report, "Search path entries: 2")
	assert.Contains(t, report, "/opt/a/python3: CPython 3.9.7 (static)")
	assert.Contains(t, report, "/opt/b/pypy3: PyPy 3.10.13 (shared)")
	assert.Contains(t, report, "/opt/b/python: ")
	assert.Contains(t, report, "3 of 4 candidate(s) work")
	assert.Contains(t, report, "Cached interpreters: 3")
	assert.Contains(t, errOut.String(), "1 candidate(s) failed")

	// Progress goes to the command's stderr.
	assert.Contains(t, stderr, "probing")
	assert.Len(t, h.fake.Calls(), 4)
}

func TestDoctorCmd_NoProgress(t *testing.T) {
	captureUI(t)
	h := newTestHost(t)

	_, stderr, err := execute(t, h.root(), "doctor", "--no-progress")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestDoctorCmd_CacheDisabled(t *testing.T) {
	out, _ := captureUI(t)
	h := newTestHost(t)
	h.cfg.Probe.CacheSize = 0

	_, _, err := execute(t, h.root(), "doctor", "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Cached interpreters: 0")
}

func TestDoctorCmd_NothingWorks(t *testing.T) {
	out, _ := captureUI(t)
	h := newTestHost(t)
	h.cfg.Discovery.SearchPath = "/opt/b"
	h.cfg.Discovery.Names = []string{"python"}
	h.fake.Fail("/opt/b/python3.12", &toolprobe.ProbeError{Kind: toolprobe.ErrTimeout, Candidate: "/opt/b/python3.12"})

	_, _, err := execute(t, h.root(), "doctor", "--no-progress")
	require.ErrorIs(t, err, toolprobe.ErrNoMatch)
	assert.Equal(t, 3, ExitCode(err))
	assert.Contains(t, out.String(), "/opt/b/python3.12: ")
}

func TestDoctorCmd_NoCandidates(t *testing.T) {
	captureUI(t)
	h := newTestHost(t)
	h.cfg.Discovery.SearchPath = "/nowhere"

	_, _, err := execute(t, h.root(), "doctor")
	require.ErrorIs(t, err, toolprobe.ErrNoMatch)
	assert.Empty(t, h.fake.Calls())
}
