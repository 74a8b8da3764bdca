package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd("1.0.0")

	assert.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
}

func TestVersionCmd_Output(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd("1.2.3")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "toolprobe version 1.2.3")
	assert.Contains(t, buf.String(), "probe contract v1")
}
