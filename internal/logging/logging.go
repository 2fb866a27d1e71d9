// Package logging configures the zerolog logger used for diagnostics.
//
// Diagnostics always go to stderr so the report on stdout stays clean.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const defaultTimeFmt = time.RFC3339

// Config controls logger initialization.
type Config struct {
	Format string // "json", "console", or "auto"
	Level  string // "debug", "info", "warn", "error", "disabled"
}

var isTerminalFn = term.IsTerminal

// FromEnv builds a Config from LOG_LEVEL and LOG_FORMAT.
func FromEnv(getenv func(string) string) Config {
	return Config{
		Format: strings.TrimSpace(getenv("LOG_FORMAT")),
		Level:  strings.TrimSpace(getenv("LOG_LEVEL")),
	}
}

// New returns a logger writing to out with the configured level and format.
func New(cfg Config, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = defaultTimeFmt

	return zerolog.New(selectWriter(cfg.Format, out)).
		Level(parseLevel(cfg.Level, out)).
		With().
		Timestamp().
		Logger()
}

// parseLevel maps a level name to a zerolog level, warning on out when the
// name is unknown.
func parseLevel(level string, out io.Writer) zerolog.Level {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "", "warn", "warning":
		return zerolog.WarnLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		fmt.Fprintf(out, "logging: invalid level %q; using %q\n", normalized, "warn")
		return zerolog.WarnLevel
	}
}

func selectWriter(format string, out io.Writer) io.Writer {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "console":
		return newConsoleWriter(out)
	case "json":
		return out
	case "auto", "":
		if isTerminal(out) {
			return newConsoleWriter(out)
		}
		return out
	default:
		fmt.Fprintf(out, "logging: invalid format %q; using %q\n", format, "json")
		return out
	}
}

func newConsoleWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: defaultTimeFmt,
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok || file == nil {
		return false
	}
	return isTerminalFn(int(file.Fd()))
}
