package internal

import (
	"io"
	"log/slog"
	"os"
)

var (
	logLevel = new(slog.LevelVar)
	logger   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
)

// SetVerbose enables debug-level logging
func SetVerbose(verbose bool) {
	if verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetLogOutput redirects log output, mainly for tests
func SetLogOutput(w io.Writer) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// LogError logs an error message with optional key-value attrs
func LogError(msg string, args ...any) {
	logger.Error(msg, args...)
}

// LogWarn logs a warning message with optional key-value attrs
func LogWarn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with optional key-value attrs
func LogInfo(msg string, args ...any) {
	logger.Info(msg, args...)
}

// LogDebug logs a debug message with optional key-value attrs
func LogDebug(msg string, args ...any) {
	logger.Debug(msg, args...)
}
