package loggers

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var setTimestampFunc sync.Once

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// New creates a new zerolog logger writing JSON to w based on the provided log level string.
// The CLI passes stderr since stdout carries the report.
// Returns an error if the log level string cannot be parsed.
func New(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	setTimestampFunc.Do(func() {
		zerolog.TimestampFunc = func() time.Time {
			return time.Now().UTC()
		}
	})

	// Create logger with JSON output, timestamp, and specified level
	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts a logger from the context.
// Returns a disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
