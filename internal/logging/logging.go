// Package logging configures colored structured logging with tint.
//
// The interactive form owns the terminal, so it logs to a file or nowhere:
//
//	logging.Setup(os.Stderr, "debug")     // calc command
//	logging.SetupFile("/tmp/tipcalc.log", "info")
//	logging.Setup(io.Discard, "info")     // TUI without --log-file
//
// An empty level falls back to the LOG_LEVEL env var (default: info).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler writing to w as the default slog logger.
func Setup(w io.Writer, level string) *slog.Logger {
	logger := slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      ParseLevel(level),
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    w != os.Stderr,
		}),
	)
	slog.SetDefault(logger)
	return logger
}

// SetupFile appends logs to path. The caller closes the returned file.
func SetupFile(path, level string) (*slog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return Setup(f, level), f, nil
}

// ParseLevel maps a level name to a slog.Level. Empty uses LOG_LEVEL.
func ParseLevel(level string) slog.Level {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
