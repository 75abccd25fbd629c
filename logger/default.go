package logger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/packlog/packlog/core"
	"github.com/packlog/packlog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize the default logger with the zap fallback transport
	defaultLogger = NewBuilder().
		WithHandler(handler.NewZapHandler(zap.Must(zap.NewProduction()))).
		WithLevel(core.LevelDefault).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(build func(*Message)) {
	Default().Debug(build)
}

// Info logs an info message using the default logger
func Info(build func(*Message)) {
	Default().Info(build)
}

// DefaultLevel logs a message at the default level using the default logger
func DefaultLevel(build func(*Message)) {
	Default().Default(build)
}

// Error logs an error message using the default logger
func Error(build func(*Message)) {
	Default().Error(build)
}

// Fault logs a fault message using the default logger
func Fault(build func(*Message)) {
	Default().Fault(build)
}
