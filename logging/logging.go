package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to emit: "debug", "info", "warn" or
	// "error". Defaults to "info" if empty or unrecognized.
	Level string
	// AddSource records the file:line of the logging call in each record.
	AddSource bool
}

// NewLogger creates a slog.Logger with a JSON handler writing to w. Library
// code logs through the process-default logger; embedding applications can
// install one built here with slog.SetDefault.
func NewLogger(config Config, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   config.AddSource,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// Nop returns a logger that discards every record. Useful in tests that
// exercise code paths with debug logging.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
