package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packlog/packlog/core"
)

func TestMemoryHandler_RetainsRecords(t *testing.T) {
	h := NewMemoryHandler()

	rec := &core.Record{
		Time:   time.Now(),
		Level:  core.LevelError,
		Format: "boom %d",
		Buffer: []byte{0x00, 0x04, 1, 0, 0, 0},
	}
	require.NoError(t, h.Handle(rec))
	require.Equal(t, 1, h.Len())

	got := h.Records()[0]
	assert.Equal(t, "boom %d", got.Format)
	assert.Equal(t, core.LevelError, got.Level)
	assert.Equal(t, rec.Buffer, got.Buffer)
}

func TestMemoryHandler_CopiesBuffer(t *testing.T) {
	h := NewMemoryHandler()
	buf := []byte{0x00, 0x01, 0x2a}
	require.NoError(t, h.Handle(&core.Record{Format: "%hhu", Buffer: buf}))

	buf[2] = 0xff
	assert.Equal(t, byte(0x2a), h.Records()[0].Buffer[2])
}

func TestMemoryHandler_Clear(t *testing.T) {
	h := NewMemoryHandler()
	require.NoError(t, h.Handle(&core.Record{Format: "x"}))
	h.Clear()
	assert.Zero(t, h.Len())
}

func TestMemoryHandler_Close(t *testing.T) {
	h := NewMemoryHandler()
	require.NoError(t, h.Handle(&core.Record{Format: "x"}))
	require.NoError(t, h.Close())
	assert.Zero(t, h.Len())
}
