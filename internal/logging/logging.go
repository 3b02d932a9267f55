// Package logging constructs the zerolog logger shared by the beaconctl
// commands.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level string to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// New builds a logger writing to stderr. Format "console" produces
// human-readable output; anything else produces zerolog's JSON lines.
func New(level zerolog.Level, format string) zerolog.Logger {
	var logger zerolog.Logger
	if format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
