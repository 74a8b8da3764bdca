// Package parser turns raw probe output into a core.Config.
package parser

import (
	"github.com/quantmind-br/toolprobe/internal/core"
)

// Parse builds a Config from both probe invocations. It has no side effects
// and returns equal Configs for equal input.
func Parse(raw *core.RawOutput) (*core.Config, error) {
	tokens, err := Tokenize(raw.Flags.Stdout)
	if err != nil {
		return nil, err
	}
	flags := classify(tokens)

	info, err := parseIntrospection(raw.Introspection.Stdout)
	if err != nil {
		return nil, err
	}

	executable := info.executable
	if executable == "" {
		executable = raw.Candidate.Path
	}

	return core.NewConfig(core.ConfigFields{
		Executable:         executable,
		Version:            info.version,
		IncludePaths:       flags.includes,
		LibPaths:           flags.libPaths,
		Libs:               flags.libs,
		ExtraCompilerFlags: flags.compiler,
		ExtraLinkerFlags:   flags.linker,
		IsStatic:           info.static,
		ABI:                info.abi,
		Implementation:     info.implementation,
		LibDir:             info.libDir,
		BasePrefix:         info.basePrefix,
		LDVersion:          info.ldVersion,
		PointerWidth:       info.pointerWidth,
	}), nil
}

var _ core.ParseFunc = Parse
