// Package logger provides a centralized logging system for the greeter
// using the slog structured logging library.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LogLevel represents the verbosity level of logging
type LogLevel int

const (
	// LevelError only logs errors
	LevelError LogLevel = iota
	// LevelWarn logs warnings and errors
	LevelWarn
	// LevelInfo logs general information, warnings, and errors
	LevelInfo
	// LevelDebug logs detailed debug information and all other levels
	LevelDebug
)

var (
	// Default logger that writes to stderr with human-readable format
	defaultLogger *slog.Logger

	// Current log level
	logLevel = LevelWarn

	// Writer for logs. Never stdout.
	logWriter io.Writer = os.Stderr

	componentsMu sync.Mutex
	components   = make(map[string]*componentHandler)
)

// Init initializes the logging system with the specified level
func Init(level LogLevel) {
	logLevel = level

	opts := &slog.HandlerOptions{
		Level: level.slogLevel(),
	}

	defaultLogger = slog.New(slog.NewTextHandler(logWriter, opts))
	slog.SetDefault(defaultLogger)

	Debug("Logger initialized", "level", logLevel)
}

// LevelFromVerbosity maps a 0..3 verbosity flag onto a LogLevel.
// Out-of-range values fall back to LevelInfo.
func LevelFromVerbosity(v int) LogLevel {
	switch v {
	case 0:
		return LevelError
	case 1:
		return LevelWarn
	case 2:
		return LevelInfo
	case 3:
		return LevelDebug
	default:
		return LevelInfo
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// GetLogLevel returns the current log level
func GetLogLevel() LogLevel {
	return logLevel
}

// Error logs an error message with optional key-value pairs
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}

// Warn logs a warning message with optional key-value pairs
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Info logs an informational message with optional key-value pairs
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Debug logs a debug message with optional key-value pairs
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// ForComponent returns the process-wide logger for the named component,
// creating it on first use. The returned logger always writes through the
// handler installed by the most recent Init, so components may grab their
// logger before logging is configured.
func ForComponent(name string) *slog.Logger {
	componentsMu.Lock()
	defer componentsMu.Unlock()

	h, ok := components[name]
	if !ok {
		h = &componentHandler{attrs: []slog.Attr{slog.String("component", name)}}
		components[name] = h
	}
	return slog.New(h)
}

// componentHandler defers to slog.Default() on every call.
type componentHandler struct {
	attrs []slog.Attr
	group string
}

func (h *componentHandler) current() slog.Handler {
	base := slog.Default().Handler().WithAttrs(h.attrs)
	if h.group != "" {
		base = base.WithGroup(h.group)
	}
	return base
}

func (h *componentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slog.Default().Handler().Enabled(ctx, level)
}

func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.current().Handle(ctx, r)
}

func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if h.group != "" {
		return h.current().WithAttrs(attrs)
	}
	merged := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &componentHandler{attrs: merged}
}

func (h *componentHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	if h.group != "" {
		return h.current().WithGroup(name)
	}
	return &componentHandler{attrs: h.attrs, group: name}
}

// IsDebugEnabled checks if debug logging is enabled
func IsDebugEnabled() bool {
	return logLevel >= LevelDebug
}

// IsInfoEnabled checks if info logging is enabled
func IsInfoEnabled() bool {
	return logLevel >= LevelInfo
}
