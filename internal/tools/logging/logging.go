// Package logging builds the process-wide zerolog logger. Request-scoped
// loggers are derived from it by the web middleware.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New creates a JSON logger on stdout at the given level. An empty or
// unknown level falls back to info.
func New(level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	return &logger
}
