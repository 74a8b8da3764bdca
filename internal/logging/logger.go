package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Level   string
	LogFile string
	NoColor bool
	// Out receives console output; defaults to stderr
	Out io.Writer
}

// NewLogger creates a new zerolog logger with dual output (console + file)
func NewLogger(cfg Config) *zerolog.Logger {
	// Enable stack trace marshaling
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	// Determine log level
	level := parseLevel(cfg.Level)

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	// Console writer (colored output for TTY). Progress bars share stderr,
	// so writes go through progressSafeWriter.
	consoleWriter := zerolog.ConsoleWriter{
		Out:        newProgressSafeWriter(out),
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb",
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	// File logger if path provided
	if cfg.LogFile != "" {
		// Ensure directory exists
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err == nil {
			fileWriter := &lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    5, // MB
				MaxBackups: 2,
				MaxAge:     14, // days
				Compress:   true,
			}
			writers = append(writers, fileWriter)
		}
	}

	// Create multi-writer
	multi := zerolog.MultiLevelWriter(writers...)

	// Create logger
	logger := zerolog.New(multi).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &logger
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewTestLogger creates a logger for testing that writes to a buffer
func NewTestLogger(w io.Writer) *zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &logger
}

// OrNop returns log, or a disabled logger when log is nil
func OrNop(log *zerolog.Logger) *zerolog.Logger {
	if log != nil {
		return log
	}
	nop := zerolog.Nop()
	return &nop
}

// Component returns a child logger tagged with a component name
func Component(log *zerolog.Logger, name string) *zerolog.Logger {
	child := OrNop(log).With().Str("component", name).Logger()
	return &child
}

// progressSafeWriter serializes writes and clears the current terminal line
// first, so a log line never lands in the middle of a progress bar.
type progressSafeWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func newProgressSafeWriter(out io.Writer) *progressSafeWriter {
	return &progressSafeWriter{out: out}
}

func (w *progressSafeWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if f, ok := w.out.(*os.File); ok && isTerminal(f) {
		if _, err := io.WriteString(f, "\r\033[K"); err != nil {
			return 0, err
		}
	}
	return w.out.Write(p)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
