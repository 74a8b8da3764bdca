package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := Out, ErrOut
	Out, ErrOut = &out, &errOut
	t.Cleanup(func() { Out, ErrOut = oldOut, oldErr })
	return &out, &errOut
}

func TestInitColors(t *testing.T) {
	t.Run("never", func(t *testing.T) {
		color.NoColor = false
		InitColors("never")
		assert.True(t, color.NoColor)
	})

	t.Run("always overrides NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		color.NoColor = true
		InitColors("always")
		assert.False(t, color.NoColor)
	})

	t.Run("auto with NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		color.NoColor = false
		InitColors("auto")
		assert.True(t, color.NoColor)
	})

	t.Run("auto with TERM=dumb", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("TERM", "dumb")
		color.NoColor = false
		InitColors("auto")
		assert.True(t, color.NoColor)
	})
}

func TestPrintFunctions(t *testing.T) {
	// Disable colors for consistent testing
	DisableColors()
	defer EnableColors()

	out, errOut := captureOutput(t)

	PrintSuccess("found %s", "python3")
	PrintInfo("scanning %d directories", 3)
	PrintKeyValue("Version", "3.12.1")
	PrintHeader("Candidates")
	PrintList([]string{"/usr/include/python3.12"})
	PrintError("probe %s", "failed")
	PrintWarning("slow %s", "interpreter")

	stdout := out.String()
	assert.Contains(t, stdout, "✓ found python3")
	assert.Contains(t, stdout, "→ scanning 3 directories")
	assert.Contains(t, stdout, "Version: 3.12.1")
	assert.Contains(t, stdout, "Candidates")
	assert.Contains(t, stdout, "• /usr/include/python3.12")

	stderr := errOut.String()
	assert.Contains(t, stderr, "✗ Error: probe failed")
	assert.Contains(t, stderr, "Warning: slow interpreter")
}

func TestColorizeImplementation(t *testing.T) {
	DisableColors()
	defer EnableColors()

	for _, impl := range []string{"CPython", "PyPy", "Unknown", ""} {
		assert.Equal(t, impl, ColorizeImplementation(impl))
	}
}

func TestSprintFunctions(t *testing.T) {
	assert.Contains(t, SprintError("bad %d", 2), "bad 2")
}

func TestColorToggles(t *testing.T) {
	DisableColors()
	assert.False(t, AreColorsEnabled())
	EnableColors()
	assert.True(t, AreColorsEnabled())
	DisableColors()
}
