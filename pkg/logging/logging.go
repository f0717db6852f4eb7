// Package logging configures structured logging for log/slog.
//
// Usage:
//
//	logging.Setup()                          // level from LOG_LEVEL, format from LOG_FORMAT
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level override
//
// Environment variables:
//
//	LOG_LEVEL:  debug, info, warn, error (default: info)
//	LOG_FORMAT: text (colored, default) or json
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures logging at the level specified by LOG_LEVEL env var
// (default: INFO).
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel configures logging at the given level. Colored tint output
// goes to stderr; LOG_FORMAT=json writes JSON lines to stdout instead.
func SetupWithLevel(level slog.Level) {
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		slog.SetDefault(slog.New(NewJSONHandler(os.Stdout, level)))
		return
	}
	slog.SetDefault(slog.New(NewTextHandler(os.Stderr, level)))
}

// NewTextHandler returns the colored handler used for local development.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}

// NewJSONHandler returns the handler used in production. Errors are
// rendered with their message under the "error" key.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok {
				return slog.String(a.Key, err.Error())
			}
			return a
		},
	})
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
