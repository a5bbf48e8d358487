package obs

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info", "":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("obs: unknown log level %q", s)
	}
}

func (l Level) zlevel() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}

// Logger is a minimal logging interface for observability.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// FieldLogger is a Logger that can carry key/value context.
type FieldLogger interface {
	Logger
	With(key, value string) FieldLogger
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

// ZeroLogger adapts a zerolog.Logger.
type ZeroLogger struct {
	L zerolog.Logger
}

// NewJSONLogger writes one JSON object per line to w.
func NewJSONLogger(w io.Writer, lvl Level) ZeroLogger {
	l := zerolog.New(w).Level(lvl.zlevel()).With().Timestamp().Logger()
	return ZeroLogger{L: l}
}

// NewConsoleLogger writes human readable lines to w.
func NewConsoleLogger(w io.Writer, lvl Level) ZeroLogger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	l := zerolog.New(cw).Level(lvl.zlevel()).With().Timestamp().Logger()
	return ZeroLogger{L: l}
}

func (z ZeroLogger) Logf(level Level, format string, args ...interface{}) {
	z.L.WithLevel(level.zlevel()).Msgf(format, args...)
}

func (z ZeroLogger) With(key, value string) FieldLogger {
	return ZeroLogger{L: z.L.With().Str(key, value).Logger()}
}

// With attaches key=value to l when it supports fields and returns l
// unchanged otherwise.
func With(l Logger, key, value string) Logger {
	if fl, ok := l.(FieldLogger); ok {
		return fl.With(key, value)
	}
	return l
}

// NewLogger picks NewJSONLogger or NewConsoleLogger.
func NewLogger(w io.Writer, json bool, lvl Level) ZeroLogger {
	if json {
		return NewJSONLogger(w, lvl)
	}
	return NewConsoleLogger(w, lvl)
}
