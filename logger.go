package pagesplit

import (
	"github.com/ingestkit/pagesplit/internal/split"
)

// LogLevel represents the severity of a log message
type LogLevel = split.LogLevel

// Log levels
const (
	LogLevelOff   = split.LogLevelOff
	LogLevelError = split.LogLevelError
	LogLevelWarn  = split.LogLevelWarn
	LogLevelInfo  = split.LogLevelInfo
	LogLevelDebug = split.LogLevelDebug
)

// Logger interface for logging messages
type Logger = split.Logger

// NewLogger creates a logger writing to stderr at the given level.
func NewLogger(level LogLevel) Logger {
	return split.NewLogger(level)
}

// SetLogLevel sets the global log level for the pagesplit package
func SetLogLevel(level LogLevel) {
	split.SetGlobalLogLevel(level)
}

// Debug logs a debug message
func Debug(msg string, keysAndValues ...interface{}) {
	split.GlobalLogger.Debug(msg, keysAndValues...)
}

// Info logs an info message
func Info(msg string, keysAndValues ...interface{}) {
	split.GlobalLogger.Info(msg, keysAndValues...)
}

// Warn logs a warning message
func Warn(msg string, keysAndValues ...interface{}) {
	split.GlobalLogger.Warn(msg, keysAndValues...)
}

// Error logs an error message
func Error(msg string, keysAndValues ...interface{}) {
	split.GlobalLogger.Error(msg, keysAndValues...)
}
