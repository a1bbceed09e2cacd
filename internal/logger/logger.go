// Package logger builds the charmbracelet/log loggers used across fitparam.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultLevel is the level of loggers created without an explicit level.
// Warnings are the only messages the collection emits on its normal path.
const DefaultLevel = log.WarnLevel

var (
	defaultOnce   sync.Once
	defaultLogger *log.Logger
)

// Default returns the shared stderr logger at DefaultLevel without timestamps.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, DefaultLevel)
	})

	return defaultLogger
}

// New creates a logger writing to w at the given level, prefixed with "fitparam".
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "fitparam",
		ReportTimestamp: false,
	})
}

// ParseLevel converts a level name to a log level. Empty or unknown names
// fall back to DefaultLevel.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return DefaultLevel
	}
}

// Discard returns a logger that drops every message.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
