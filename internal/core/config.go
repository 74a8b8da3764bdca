package core

import (
	"encoding/json"
	"slices"
)

// ConfigFields carries the values used to build a Config. It is a plain
// value so parsers can fill it incrementally.
type ConfigFields struct {
	Executable         string
	Version            Version
	IncludePaths       []string
	LibPaths           []string
	Libs               []string
	ExtraCompilerFlags []string
	ExtraLinkerFlags   []string
	IsStatic           bool
	ABI                string

	Implementation Implementation
	LibDir         string
	BasePrefix     string
	LDVersion      string
	PointerWidth   int
}

// Config is the normalized build configuration of one interpreter.
// It is immutable; slice accessors return copies.
type Config struct {
	f ConfigFields
}

// NewConfig copies f into a new Config. Later changes to f's slices do not
// affect the result.
func NewConfig(f ConfigFields) *Config {
	f.IncludePaths = cloneOrNil(f.IncludePaths)
	f.LibPaths = cloneOrNil(f.LibPaths)
	f.Libs = cloneOrNil(f.Libs)
	f.ExtraCompilerFlags = cloneOrNil(f.ExtraCompilerFlags)
	f.ExtraLinkerFlags = cloneOrNil(f.ExtraLinkerFlags)
	if f.Implementation == "" {
		f.Implementation = ImplementationUnknown
	}
	return &Config{f: f}
}

func cloneOrNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

func (c *Config) Executable() string             { return c.f.Executable }
func (c *Config) Version() Version               { return c.f.Version }
func (c *Config) IncludePaths() []string         { return slices.Clone(c.f.IncludePaths) }
func (c *Config) LibPaths() []string             { return slices.Clone(c.f.LibPaths) }
func (c *Config) Libs() []string                 { return slices.Clone(c.f.Libs) }
func (c *Config) ExtraCompilerFlags() []string   { return slices.Clone(c.f.ExtraCompilerFlags) }
func (c *Config) ExtraLinkerFlags() []string     { return slices.Clone(c.f.ExtraLinkerFlags) }
func (c *Config) IsStatic() bool                 { return c.f.IsStatic }
func (c *Config) ABI() string                    { return c.f.ABI }
func (c *Config) Implementation() Implementation { return c.f.Implementation }
func (c *Config) LibDir() string                 { return c.f.LibDir }
func (c *Config) BasePrefix() string             { return c.f.BasePrefix }
func (c *Config) LDVersion() string              { return c.f.LDVersion }
func (c *Config) PointerWidth() int              { return c.f.PointerWidth }

// ExtraFlags returns the unrecognized flags, compiler flags first.
func (c *Config) ExtraFlags() []string {
	out := make([]string, 0, len(c.f.ExtraCompilerFlags)+len(c.f.ExtraLinkerFlags))
	out = append(out, c.f.ExtraCompilerFlags...)
	return append(out, c.f.ExtraLinkerFlags...)
}

// Fields returns a copy of the underlying values.
func (c *Config) Fields() ConfigFields {
	f := c.f
	f.IncludePaths = slices.Clone(f.IncludePaths)
	f.LibPaths = slices.Clone(f.LibPaths)
	f.Libs = slices.Clone(f.Libs)
	f.ExtraCompilerFlags = slices.Clone(f.ExtraCompilerFlags)
	f.ExtraLinkerFlags = slices.Clone(f.ExtraLinkerFlags)
	return f
}

// configJSON is the serialized shape used by the CLI
type configJSON struct {
	Executable         string         `json:"executable" yaml:"executable"`
	Version            string         `json:"version" yaml:"version"`
	Implementation     Implementation `json:"implementation" yaml:"implementation"`
	IncludePaths       []string       `json:"include_paths" yaml:"include_paths"`
	LibPaths           []string       `json:"lib_paths" yaml:"lib_paths"`
	Libs               []string       `json:"libs" yaml:"libs"`
	ExtraCompilerFlags []string       `json:"extra_compiler_flags,omitempty" yaml:"extra_compiler_flags,omitempty"`
	ExtraLinkerFlags   []string       `json:"extra_linker_flags,omitempty" yaml:"extra_linker_flags,omitempty"`
	IsStatic           bool           `json:"is_static" yaml:"is_static"`
	ABI                string         `json:"abi" yaml:"abi"`
	LibDir             string         `json:"libdir,omitempty" yaml:"libdir,omitempty"`
	BasePrefix         string         `json:"base_prefix,omitempty" yaml:"base_prefix,omitempty"`
	LDVersion          string         `json:"ld_version,omitempty" yaml:"ld_version,omitempty"`
	PointerWidth       int            `json:"pointer_width,omitempty" yaml:"pointer_width,omitempty"`
}

// View returns a serializable snapshot of the config.
func (c *Config) View() any {
	f := c.Fields()
	return configJSON{
		Executable:         f.Executable,
		Version:            f.Version.String(),
		Implementation:     f.Implementation,
		IncludePaths:       nonNil(f.IncludePaths),
		LibPaths:           nonNil(f.LibPaths),
		Libs:               nonNil(f.Libs),
		ExtraCompilerFlags: f.ExtraCompilerFlags,
		ExtraLinkerFlags:   f.ExtraLinkerFlags,
		IsStatic:           f.IsStatic,
		ABI:                f.ABI,
		LibDir:             f.LibDir,
		BasePrefix:         f.BasePrefix,
		LDVersion:          f.LDVersion,
		PointerWidth:       f.PointerWidth,
	}
}

// MarshalJSON implements json.Marshaler
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.View())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
