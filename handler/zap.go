package handler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/packlog/packlog/core"
	"github.com/packlog/packlog/formatter"
)

// ZapHandler decodes each record's argument buffer, renders the format
// string, and emits the result through a zap.Logger. Redacted arguments
// reach zap already masked; the raw values never leave the binary buffer.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler emitting through l
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: l}
}

// Handle renders the record and writes it at the mapped zap level.
func (h *ZapHandler) Handle(rec *core.Record) error {
	args, err := core.DecodeArguments(rec.Buffer)
	if err != nil {
		return err
	}
	msg := formatter.Render(rec.Format, args)

	if ce := h.logger.Check(zapLevel(rec.Level), msg); ce != nil {
		ce.Time = rec.Time
		fields := []zap.Field{zap.Int("args", len(args))}
		if rec.Preamble.Redacted() {
			fields = append(fields, zap.Bool("redacted", true))
		}
		ce.Write(fields...)
	}
	return nil
}

// Close flushes zap's buffers
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}

// zapLevel maps transport levels onto zap's. Default has no zap equivalent
// and maps to Info; Fault maps to Error rather than a process-terminating
// level because a handler must never take the process down.
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.LevelDebug:
		return zapcore.DebugLevel
	case core.LevelInfo, core.LevelDefault:
		return zapcore.InfoLevel
	default:
		return zapcore.ErrorLevel
	}
}
