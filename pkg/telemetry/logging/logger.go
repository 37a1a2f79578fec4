package logging

import (
	"io"
	"log/slog"
	"os"

	"mercator-hq/atlas/pkg/config"
)

// New creates a structured logger from the logging configuration.
// Output goes to w; pass nil to log to stderr.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Setup creates a logger from the configuration and installs it as the
// process default, so packages using slog.Default() pick it up.
func Setup(cfg config.LoggingConfig) *slog.Logger {
	logger := New(cfg, nil)
	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a configuration level string to a slog.Level.
// Unknown values fall back to info.
func parseLevel(level string) slog.Level {
	switch level {
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
