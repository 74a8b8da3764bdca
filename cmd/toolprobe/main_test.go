package main

import (
	"io"
	"testing"

	"github.com/quantmind-br/toolprobe/internal/cmd"
	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/quantmind-br/toolprobe/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const colorNever = "never"

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("TOOLPROBE_PATHS_LOG_FILE", dir+"/toolprobe.log")
	t.Setenv("TOOLPROBE_LOGGING_COLOR", colorNever)
}

func TestConfigLoad(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err, "Configuration should load without error")
	assert.NotNil(t, cfg, "Configuration should not be nil")
}

func TestLoggerInitialization(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err, "Configuration should load without error")

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == colorNever,
	})
	assert.NotNil(t, log, "Logger should not be nil")
}

func TestCommandExecution(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	rootCmd := cmd.NewRootCmd(cfg, logging.NewTestLogger(io.Discard), version)
	rootCmd.SetArgs([]string{"version"})
	assert.NoError(t, rootCmd.Execute(), "Command execution should not return an error")
}

func TestRun_ExitCodes(t *testing.T) {
	isolate(t)
	empty := t.TempDir()

	assert.Equal(t, 0, run([]string{"version"}))
	assert.Equal(t, 2, run([]string{"find", "--no-such-flag"}))
	assert.Equal(t, 3, run([]string{"--search-path", empty, "find"}))
}

func TestRun_BadConfig(t *testing.T) {
	isolate(t)
	t.Setenv("TOOLPROBE_PROBE_PARALLELISM", "0")

	assert.Equal(t, 2, run([]string{"version"}))
}
