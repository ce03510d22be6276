package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Rkreels/powerbi-sub001/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger selects a JSON handler for "json" and a text handler with source
// locations otherwise. Unknown levels fall back to info.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	if text {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
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
