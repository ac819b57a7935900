// package logger configures the application's slog logger.
//
// In dev the output is human-readable and colorized (tint) when stderr is a terminal;
// in other environments it is JSON. Logs always go to stderr: stdout is reserved for command output.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// LevelNone disables logging.
const LevelNone = slog.LevelError + 100

// ParseLogLevel converts a level name (debug, info, warn, error, none) to a slog.Level.
// slog's own text form (e.g. "ERROR+100") is also accepted. Unknown names return slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "off", "silent":
		return LevelNone
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// InitLogger creates the application logger writing to w (normally os.Stderr)
// and sets it as the slog default.
func InitLogger(w io.Writer, level slog.Level, environment string) *slog.Logger {
	logger := NewLogger(w, level, environment)
	slog.SetDefault(logger)
	return logger
}

// NewLogger creates a logger writing to w.
// The dev environment uses the tint handler, everything else the JSON handler.
func NewLogger(w io.Writer, level slog.Level, environment string) *slog.Logger {
	if level >= LevelNone {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelNone}))
	}

	if environment == "dev" {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
