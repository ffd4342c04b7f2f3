package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/plancatalog-backend/internal/config"
)

// NewLogger creates the process logger from LogConfig, tags every record
// with the application name and sets it as the slog default. Output is
// always os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(slog.String("app", "plancatalog"))
	slog.SetDefault(logger)
	return logger
}

// newHandler builds a JSON handler for format "json" and a text handler with
// source locations otherwise. Level is debug, info, warn or error
// (case-insensitive) and defaults to info.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	isJSON := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON,
	}
	if isJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
