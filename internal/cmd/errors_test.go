package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/quantmind-br/toolprobe"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"generic", errors.New("boom"), 1},
		{"usage", usageErrorf("bad flag"), 2},
		{"wrapped usage", fmt.Errorf("find: %w", usageErrorf("bad")), 2},
		{"no match", &toolprobe.SelectionError{Kind: toolprobe.ErrNoMatch}, 3},
		{"wrapped no match", fmt.Errorf("x: %w", toolprobe.ErrNoMatch), 3},
		{"unreadable", &toolprobe.DiscoveryError{Kind: toolprobe.ErrPathUnreadable}, 4},
		{"probe failure", &toolprobe.ProbeError{Kind: toolprobe.ErrTimeout}, 1},
		{"cancelled", context.Canceled, 130},
		{"cancelled during selection", fmt.Errorf("probe: %w", context.Canceled), 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
