package logger

import (
	"time"

	"github.com/packlog/packlog/core"
	"github.com/packlog/packlog/handler"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler handler.Handler
	level   core.Level
	maxArgs int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler handler.Handler
	level   core.Level
	maxArgs int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:   core.LevelDefault, // Default gate
		maxArgs: core.DefaultMaxArgumentCount,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithMaxArguments caps how many interpolated arguments one message may
// carry. Interpolations past the cap are dropped without trace.
func (b *Builder) WithMaxArguments(max int) *Builder {
	b.maxArgs = max
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler: b.handler,
		level:   b.level,
		maxArgs: b.maxArgs,
	}
}

// Enabled reports whether messages at the given level would be handled.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level && l.handler != nil
}

// Log assembles and flushes one message at the given level. When the level
// is below the logger's gate the build callback never runs, so neither
// message assembly nor any argument expression is ever evaluated.
func (l *Logger) Log(level core.Level, build func(*Message)) {
	if !l.Enabled(level) {
		return
	}

	m := newMessage(l.maxArgs)
	build(m)

	preamble, format, buffer := m.ctx.Encode()
	rec := &core.Record{
		Time:     time.Now(),
		Level:    level,
		Preamble: preamble,
		Format:   format,
		Buffer:   buffer,
	}
	_ = l.handler.Handle(rec)
}

// Debug logs a debug message
func (l *Logger) Debug(build func(*Message)) {
	l.Log(core.LevelDebug, build)
}

// Info logs an info message
func (l *Logger) Info(build func(*Message)) {
	l.Log(core.LevelInfo, build)
}

// Default logs a message at the default level
func (l *Logger) Default(build func(*Message)) {
	l.Log(core.LevelDefault, build)
}

// Error logs an error message
func (l *Logger) Error(build func(*Message)) {
	l.Log(core.LevelError, build)
}

// Fault logs a fault message
func (l *Logger) Fault(build func(*Message)) {
	l.Log(core.LevelFault, build)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
