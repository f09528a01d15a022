package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// New returns a console logger writing to stderr, which keeps stdout free
// for the terminal UI.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// Nop discards everything.
func Nop() zerolog.Logger { return zerolog.Nop() }

// WithLevel parses a level name ("debug", "info", "warn", ...) and applies
// it to l. Unknown names leave l at info.
func WithLevel(l zerolog.Logger, name string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return l.Level(lvl)
}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx or a default one.
func FromContext(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return l
	}
	return New()
}

// WithFields adds structured fields to a logger.
func WithFields(l zerolog.Logger, fields map[string]interface{}) zerolog.Logger {
	c := l.With()
	for k, v := range fields {
		c = c.Interface(k, v)
	}
	return c.Logger()
}
