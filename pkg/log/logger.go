package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("log: unknown level %q", s)
	}
}

// Field is a single structured key/value pair attached to a log message.
type Field struct {
	Key   string
	Value any
}

// Str returns a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 returns an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 returns a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Bool returns a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Dur returns a duration field.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err returns an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Component tags messages with the emitting component name.
func Component(name string) Field { return Field{Key: "component", Value: name} }

// Any returns a field with an arbitrary value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Logger is the leveled, structured logging interface for ares-core components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// Fatal logs at error severity and terminates the process.
	Fatal(msg string, fields ...Field)

	// With returns a Logger that attaches the given fields to every message.
	With(fields ...Field) Logger

	// SetLevel adjusts the minimum emitted level. It affects all Loggers
	// derived from the same root.
	SetLevel(level Level)
}

// Format selects the wire format of emitted log lines.
type Format int

// Output formats
const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("log: unknown format %q", s)
	}
}

// Option configures a logger under construction.
type Option func(*options)

type options struct {
	level  Level
	format Format
	out    io.Writer
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(o *options) { o.level = level }
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(o *options) { o.format = format }
}

// WithWriter sets the output destination. Defaults to stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

type baseLogger struct {
	sl    *slog.Logger
	level *slog.LevelVar
}

// NewLogger creates a logger. With no options it logs text at info level to
// stderr.
func NewLogger(opts ...Option) Logger {
	o := options{level: InfoLevel, format: FormatText, out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	lv := new(slog.LevelVar)
	lv.Set(toSlogLevel(o.level))
	hopts := &slog.HandlerOptions{Level: lv}

	var h slog.Handler
	if o.format == FormatJSON {
		h = slog.NewJSONHandler(o.out, hopts)
	} else {
		h = slog.NewTextHandler(o.out, hopts)
	}
	return &baseLogger{sl: slog.New(h), level: lv}
}

func (l *baseLogger) log(level slog.Level, msg string, fields []Field) {
	l.sl.LogAttrs(context.Background(), level, msg, attrs(fields)...)
}

func (l *baseLogger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields) }
func (l *baseLogger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields) }
func (l *baseLogger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields) }
func (l *baseLogger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields) }

func (l *baseLogger) Fatal(msg string, fields ...Field) {
	l.log(slog.LevelError, msg, fields)
	os.Exit(1)
}

func (l *baseLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	args := make([]any, 0, len(fields))
	for _, a := range attrs(fields) {
		args = append(args, a)
	}
	return &baseLogger{sl: l.sl.With(args...), level: l.level}
}

func (l *baseLogger) SetLevel(level Level) { l.level.Set(toSlogLevel(level)) }

func attrs(fields []Field) []slog.Attr {
	if len(fields) == 0 {
		return nil
	}
	out := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel, FatalLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
