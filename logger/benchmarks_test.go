package logger

import (
	"testing"

	"github.com/packlog/packlog/core"
)

// noopHandler discards records, isolating assembly and flush cost.
type noopHandler struct{}

func (noopHandler) Handle(*core.Record) error { return nil }
func (noopHandler) Close() error              { return nil }

func BenchmarkLogThreeArgs(b *testing.B) {
	l := NewBuilder().
		WithHandler(noopHandler{}).
		WithLevel(core.LevelDebug).
		Build()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Default(func(m *Message) {
			m.Literal("handled ").
				Int(func() int { return i }).
				Literal(" of ").
				Uint32(func() uint32 { return 1000 }).
				Literal(" for ").
				Int64(func() int64 { return 77 }, Hex, Private)
		})
	}
}

func BenchmarkLogFiltered(b *testing.B) {
	l := NewBuilder().
		WithHandler(noopHandler{}).
		WithLevel(core.LevelError).
		Build()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug(func(m *Message) {
			m.Int(func() int { return i })
		})
	}
}
