// Package logger is the leveled logging facade used by the list engine and
// the collection. Library code defaults to Noop so nothing is written to the
// terminal the widget is drawing on.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
)

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for building a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is implemented by anything that can receive leveled messages.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

type stdLogger struct {
	logger *log.Logger
	debug  bool
}

// New returns a Logger writing to w with the standard "[vlist] " prefix.
// Debug messages are dropped unless debug is true.
func New(w io.Writer, debug bool) Logger {
	return &stdLogger{
		logger: log.New(w, "[vlist] ", log.LstdFlags|log.Lmicroseconds),
		debug:  debug,
	}
}

func (l *stdLogger) Debug(msg string, fields ...Field) {
	if !l.debug {
		return
	}
	l.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

func (l *stdLogger) Info(msg string, fields ...Field) {
	l.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

func (l *stdLogger) Warn(msg string, fields ...Field) {
	l.logger.Printf("[WARN] %s%s", msg, formatFields(fields))
}

func (l *stdLogger) Error(msg string, fields ...Field) {
	l.logger.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

type slogLogger struct {
	logger *slog.Logger
}

// NewSlog returns a Logger writing records through h. Fields become
// attributes and the level filter is h's.
func NewSlog(h slog.Handler) Logger {
	return &slogLogger{logger: slog.New(h)}
}

func (l *slogLogger) log(level slog.Level, msg string, fields []Field) {
	attrs := make([]slog.Attr, len(fields))
	for i, field := range fields {
		attrs[i] = slog.Any(field.Key, field.Value)
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

func (l *slogLogger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields) }
func (l *slogLogger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields) }
func (l *slogLogger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields) }
func (l *slogLogger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields) }

type noopLogger struct{}

// Noop returns a Logger that discards everything.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(msg string, fields ...Field) {}
func (noopLogger) Info(msg string, fields ...Field)  {}
func (noopLogger) Warn(msg string, fields ...Field)  {}
func (noopLogger) Error(msg string, fields ...Field) {}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(" {")
	for i, field := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", field.Key, field.Value)
	}
	b.WriteString("}")
	return b.String()
}
