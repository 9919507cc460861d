// Package logger provides the process-wide structured logger.
// Output is JSON on stdout so it can be shipped as-is.
package logger

import (
	"log/slog"
	"os"
)

var base *slog.Logger

func Init() {
	base = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(base)
}

// Info logs an informational message. Args are alternating key/value pairs.
func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

// Warn logs unusual but non-fatal conditions.
func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

// Error logs failures.
func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}

// Fatal logs the message and terminates the process.
func Fatal(msg string, args ...any) {
	logger().Error(msg, args...)
	os.Exit(1)
}

func logger() *slog.Logger {
	if base == nil {
		return slog.Default()
	}
	return base
}
