// Package logging provides the leveled, field-carrying logger used across
// keyline. Output goes to a file or any io.Writer; the terminal is owned
// by the editor, so nothing is ever written to the screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// sink is shared by a logger and everything derived from it.
type sink struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
}

// Logger writes lines of the form
//
//	2006-01-02T15:04:05.000 [LEVEL] prefix: message {k=v, ...}
//
// Derived loggers share the parent's output.
type Logger struct {
	sink   *sink
	level  Level
	prefix string
	fields map[string]any
	now    func() time.Time
}

// Config configures a logger.
type Config struct {
	// Level is the minimum level written.
	Level Level
	// Output is where lines are written. Nil discards them.
	Output io.Writer
	// Prefix is prepended to every message.
	Prefix string
}

// New creates a logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	return &Logger{
		sink:   &sink{out: out},
		level:  cfg.Level,
		prefix: cfg.Prefix,
		now:    time.Now,
	}
}

// Open creates a logger appending to the file at path. An empty path
// yields a logger that discards everything.
func Open(path string, level Level, prefix string) (*Logger, error) {
	if path == "" {
		return New(Config{Level: level, Prefix: prefix}), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	l := New(Config{Level: level, Output: f, Prefix: prefix})
	l.sink.closer = f
	return l, nil
}

// Nop returns a logger that discards all output.
func Nop() *Logger {
	return New(Config{Level: LevelError + 1})
}

// Close closes the underlying file, if the logger owns one.
func (l *Logger) Close() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.closer == nil {
		return nil
	}
	err := l.sink.closer.Close()
	l.sink.closer = nil
	l.sink.out = io.Discard
	return err
}

// Level returns the minimum level written.
func (l *Logger) Level() Level {
	return l.level
}

// With returns a new logger with the given field added.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	clone := *l
	clone.fields = merged
	return &clone
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.With("component", component)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	b.WriteString(l.now().Format("2006-01-02T15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		b.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
		}
		b.WriteString("}")
	}
	b.WriteByte('\n')

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.out, b.String())
}
