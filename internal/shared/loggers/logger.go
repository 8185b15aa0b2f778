package loggers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type options struct {
	writer io.Writer
	format string
}

// Option customizes the logger built by New.
type Option func(*options)

// WithWriter sends log output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithFormat selects "json" (default) or "console" human-readable output.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// New creates a new zerolog logger based on the provided log level string.
// Returns an error if the log level string cannot be parsed.
func New(level string, opts ...Option) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	o := options{writer: os.Stdout, format: FormatJSON}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	writer := o.writer
	if o.format == FormatConsole {
		writer = zerolog.ConsoleWriter{Out: o.writer, TimeFormat: time.RFC3339}
	}

	// Create logger with timestamp, caller and the specified level
	logger := zerolog.New(writer).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts a logger from the context.
// Returns a no-op logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
