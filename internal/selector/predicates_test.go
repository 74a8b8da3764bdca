package selector

import (
	"testing"

	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func config(version string, impl core.Implementation, static bool) *core.Config {
	v, err := core.ParseVersion(version)
	if err != nil {
		panic(err)
	}
	return core.NewConfig(core.ConfigFields{Version: v, Implementation: impl, IsStatic: static})
}

func TestPredicates(t *testing.T) {
	constraint, err := core.ParseConstraint(">=3.9,<3.12")
	require.NoError(t, err)

	cpy311 := config("3.11.4", core.ImplementationCPython, false)
	pypy39 := config("3.9.18", core.ImplementationPyPy, true)
	cpy27 := config("2.7.18", core.ImplementationCPython, true)

	tests := []struct {
		name string
		pred core.Predicate
		cfg  *core.Config
		want bool
	}{
		{"any", Any(), cpy27, true},
		{"major match", MajorIs(3), cpy311, true},
		{"major mismatch", MajorIs(3), cpy27, false},
		{"at least equal", AtLeast(3, 11), cpy311, true},
		{"at least below", AtLeast(3, 10), pypy39, false},
		{"implementation", ImplementationIs(core.ImplementationPyPy), pypy39, true},
		{"implementation mismatch", ImplementationIs(core.ImplementationPyPy), cpy311, false},
		{"constraint inside", MatchConstraint(constraint), cpy311, true},
		{"constraint outside", MatchConstraint(constraint), cpy27, false},
		{"static", Static(true), pypy39, true},
		{"dynamic", Static(false), pypy39, false},
		{"all empty", All(), cpy27, true},
		{"all match", All(MajorIs(3), nil, ImplementationIs(core.ImplementationCPython)), cpy311, true},
		{"all one fails", All(MajorIs(3), ImplementationIs(core.ImplementationPyPy)), cpy311, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred(tt.cfg))
		})
	}
}
