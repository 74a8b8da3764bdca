package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Output destinations; tests may swap them.
var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

// Color scheme for toolprobe
var (
	// Primary actions
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)

	// Secondary actions
	Highlight = color.New(color.FgHiCyan, color.Bold)
	Muted     = color.New(color.Faint)
	Bold      = color.New(color.Bold)

	// Status indicators
	CheckMark = color.GreenString("✓")
	CrossMark = color.RedString("✗")
	Arrow     = color.CyanString("→")
	Bullet    = color.HiBlackString("•")

	// Implementation colors
	ImplCPython = color.New(color.FgBlue)
	ImplPyPy    = color.New(color.FgMagenta)
	ImplUnknown = color.New(color.FgYellow)
)

// InitColors initializes color settings from the configured mode
// ("auto", "always" or "never") and the environment
func InitColors(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
		return
	case "never":
		color.NoColor = true
		return
	}

	// Respect NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	// Respect TERM environment variable
	if os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(Out, "%s %s\n", CheckMark, fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(ErrOut, "%s Error: %s\n", CrossMark, fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(ErrOut, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(Out, "%s %s\n", Arrow, fmt.Sprintf(format, args...))
}

// PrintKeyValue prints a key-value pair with color
func PrintKeyValue(key, value string) {
	FprintKeyValue(Out, key, value)
}

// FprintKeyValue prints a key-value pair to w
func FprintKeyValue(w io.Writer, key, value string) {
	Bold.Fprintf(w, "%s: ", key)
	fmt.Fprintln(w, value)
}

// PrintHeader prints a section header
func PrintHeader(text string) {
	fmt.Fprintln(Out)
	Bold.Fprintln(Out, text)
	Muted.Fprintln(Out, "────────────────────────────────────────")
}

// PrintSubheader prints a subsection header
func PrintSubheader(text string) {
	Highlight.Fprintln(Out, text)
}

// PrintList prints a bulleted list
func PrintList(items []string) {
	FprintList(Out, items)
}

// FprintList prints a bulleted list to w
func FprintList(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", Bullet, item)
	}
}

// ColorizeImplementation returns a colored implementation name
func ColorizeImplementation(impl string) string {
	switch impl {
	case "CPython":
		return ImplCPython.Sprint(impl)
	case "PyPy":
		return ImplPyPy.Sprint(impl)
	default:
		return ImplUnknown.Sprint(impl)
	}
}

// SprintError returns an error string without printing
func SprintError(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", CrossMark, fmt.Sprintf(format, args...))
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output
func EnableColors() {
	color.NoColor = false
}

// AreColorsEnabled returns whether colors are currently enabled
func AreColorsEnabled() bool {
	return !color.NoColor
}
