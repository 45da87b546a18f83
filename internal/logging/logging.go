// Package logging provides structured logging using Go's slog package.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// RunIDKey is the context key for the ID of one CLI invocation.
	RunIDKey ContextKey = "run_id"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	output        io.Writer = os.Stderr
	current       = struct {
		level  Level
		format Format
	}{LevelInfo, FormatAuto}
)

func init() {
	InitLogger(LevelInfo, FormatAuto)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
	// FormatAuto picks text on a terminal and JSON otherwise.
	FormatAuto
)

// ParseLevel maps a level name to a Level. The empty string is LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}

// ParseFormat maps a format name to a Format. The empty string is FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown log format %q (want auto, json or text)", s)
	}
}

// InitLogger initializes the global logger with the specified level and format.
func InitLogger(level Level, format Format) {
	mu.Lock()
	defer mu.Unlock()
	current.level, current.format = level, format
	rebuild()
}

// SetOutput redirects the global logger, keeping its level and format.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// rebuild must be called with mu held.
func rebuild() {
	var slogLevel slog.Level
	switch current.level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if resolveFormat(current.format, output) == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func resolveFormat(format Format, w io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if IsTerminal(w) {
		return FormatText
	}
	return FormatJSON
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// NewRunID returns a fresh run ID.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// LoggerFromContext returns a logger with context values attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()
	if runID := GetRunID(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	return logger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// DebugContext logs a debug message with context.
func DebugContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Debug(msg, args...)
}

// InfoContext logs an info message with context.
func InfoContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Info(msg, args...)
}

// WarnContext logs a warning message with context.
func WarnContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Warn(msg, args...)
}

// ErrorContext logs an error message with context.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Error(msg, args...)
}

// CorpusLoaded logs the corpus a run validates against.
func CorpusLoaded(ctx context.Context, id, source string, books int, hash string, args ...any) {
	allArgs := []any{
		"corpus_id", id,
		"source", source,
		"books", books,
		"hash", hash,
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Info("corpus_loaded", allArgs...)
}

// ReferenceChecked logs the outcome of one reference validation.
// code is empty for accepted references.
func ReferenceChecked(ctx context.Context, input string, accepted bool, code string, args ...any) {
	allArgs := []any{
		"input", input,
		"accepted", accepted,
	}
	if code != "" {
		allArgs = append(allArgs, "code", code)
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Debug("reference_checked", allArgs...)
}

// ConfigLoaded logs which configuration file was used.
func ConfigLoaded(ctx context.Context, path string, exists bool, args ...any) {
	allArgs := []any{
		"path", path,
		"exists", exists,
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Debug("config_loaded", allArgs...)
}
