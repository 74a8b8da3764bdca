package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPatterns(t *testing.T) {
	s, err := DefaultPatterns("python", "python3")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	tests := []struct {
		file       string
		wantMatch  bool
		wantFamily string
	}{
		{"python", true, "python"},
		{"python3", true, "python"},
		{"python3.11", true, "python"},
		{"python3.11.4", false, ""},
		{"python3-config", false, ""},
		{"python3.11m", false, ""},
		{"ipython", false, ""},
		{"python.sh", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, ok := s.Match(tt.file)
			assert.Equal(t, tt.wantMatch, ok)
			assert.Equal(t, tt.wantFamily, p.Family)
		})
	}
}

func TestDefaultPatterns_InvalidFamily(t *testing.T) {
	_, err := DefaultPatterns("bin/python")
	assert.Error(t, err)
}

func TestPatternSet_Add(t *testing.T) {
	s := NewPatternSet()

	require.NoError(t, s.Add("debug", "python", `^python\d\.\d+d$`))
	assert.Error(t, s.Add("broken", "", `(`))

	p, ok := s.Match("python3.12d")
	require.True(t, ok)
	assert.Equal(t, "debug", p.Name)

	require.NoError(t, s.Add("", "", `^tool$`))
	patterns := s.Patterns()
	require.Len(t, patterns, 2)
	assert.Equal(t, `^tool$`, patterns[1].Name)
	assert.Equal(t, "[debug, ^tool$]", s.String())
}

func TestPatternSet_FirstMatchWins(t *testing.T) {
	s := NewPatternSet()
	require.NoError(t, s.Add("first", "a", `^py`))
	require.NoError(t, s.Add("second", "b", `^python$`))

	p, ok := s.Match("python")
	require.True(t, ok)
	assert.Equal(t, "first", p.Name)
}
