package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/ui"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	case "":
		return formatTable, nil
	default:
		return "", usageErrorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// candidateView is the serialized shape of a discovered executable
type candidateView struct {
	Order       int    `json:"order" yaml:"order"`
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Canonical   string `json:"canonical" yaml:"canonical"`
	VersionHint string `json:"version_hint,omitempty" yaml:"version_hint,omitempty"`
}

func newCandidateView(c toolprobe.Candidate) candidateView {
	return candidateView{
		Order:       c.Order,
		Name:        c.Name,
		Path:        c.Path,
		Canonical:   c.Canonical,
		VersionHint: c.VersionHint,
	}
}

// writeStructured encodes v as JSON or YAML
func writeStructured(w io.Writer, format outputFormat, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not structured", format)
	}
}

// renderConfig prints a single interpreter in full
func renderConfig(w io.Writer, format outputFormat, cfg *toolprobe.Config) error {
	if format != formatTable {
		return writeStructured(w, format, cfg.View())
	}

	ui.FprintKeyValue(w, "Executable", cfg.Executable())
	ui.FprintKeyValue(w, "Version", cfg.Version().String())
	ui.FprintKeyValue(w, "Implementation", ui.ColorizeImplementation(string(cfg.Implementation())))
	ui.FprintKeyValue(w, "ABI", orNone(cfg.ABI()))
	ui.FprintKeyValue(w, "Linkage", linkage(cfg))
	if cfg.PointerWidth() > 0 {
		ui.FprintKeyValue(w, "Pointer size", strconv.Itoa(cfg.PointerWidth()))
	}
	if cfg.LibDir() != "" {
		ui.FprintKeyValue(w, "Library dir", cfg.LibDir())
	}
	if cfg.BasePrefix() != "" {
		ui.FprintKeyValue(w, "Base prefix", cfg.BasePrefix())
	}
	ui.FprintKeyValue(w, "Include paths", joinOrNone(cfg.IncludePaths()))
	ui.FprintKeyValue(w, "Library paths", joinOrNone(cfg.LibPaths()))
	ui.FprintKeyValue(w, "Libraries", joinOrNone(cfg.Libs()))
	ui.FprintKeyValue(w, "Compiler flags", joinOrNone(cfg.ExtraCompilerFlags()))
	ui.FprintKeyValue(w, "Linker flags", joinOrNone(cfg.ExtraLinkerFlags()))
	return nil
}

// renderConfigs prints one row per interpreter
func renderConfigs(w io.Writer, format outputFormat, cfgs []*toolprobe.Config) error {
	if format != formatTable {
		views := make([]any, 0, len(cfgs))
		for _, cfg := range cfgs {
			views = append(views, cfg.View())
		}
		return writeStructured(w, format, views)
	}

	headers := []string{"EXECUTABLE", "VERSION", "IMPLEMENTATION", "ABI", "LINKAGE"}
	table := newTable(w, headers)
	for _, cfg := range cfgs {
		_ = table.Append([]string{
			cfg.Executable(),
			cfg.Version().String(),
			ui.ColorizeImplementation(string(cfg.Implementation())),
			orNone(cfg.ABI()),
			linkage(cfg),
		})
	}
	return table.Render()
}

func renderCandidates(w io.Writer, format outputFormat, candidates []toolprobe.Candidate) error {
	if format != formatTable {
		views := make([]candidateView, 0, len(candidates))
		for _, c := range candidates {
			views = append(views, newCandidateView(c))
		}
		return writeStructured(w, format, views)
	}

	table := newTable(w, []string{"#", "PATH", "RESOLVES TO", "HINT"})
	for _, c := range candidates {
		resolved := "-"
		if c.Canonical != c.Path {
			resolved = c.Canonical
		}
		_ = table.Append([]string{strconv.Itoa(c.Order), c.Path, resolved, orDash(c.VersionHint)})
	}
	return table.Render()
}

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithHeader(headers),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)
}

func linkage(cfg *toolprobe.Config) string {
	if cfg.IsStatic() {
		return "static"
	}
	return "shared"
}

func joinOrNone(s []string) string {
	if len(s) == 0 {
		return "(none)"
	}
	return strings.Join(s, " ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
