package handler

import (
	"sync"

	"github.com/packlog/packlog/core"
)

// MemoryHandler retains handled records in memory, in arrival order. It is
// safe for concurrent use and intended for tests and diagnostics.
type MemoryHandler struct {
	mu      sync.Mutex
	records []*core.Record
}

// NewMemoryHandler creates an empty memory handler
func NewMemoryHandler() *MemoryHandler {
	return &MemoryHandler{}
}

// Handle retains a copy of the record. The buffer is copied so the handler's
// view stays valid regardless of what the caller does with the original.
func (h *MemoryHandler) Handle(rec *core.Record) error {
	stored := *rec
	stored.Buffer = append([]byte(nil), rec.Buffer...)

	h.mu.Lock()
	h.records = append(h.records, &stored)
	h.mu.Unlock()
	return nil
}

// Records returns a snapshot of the retained records.
func (h *MemoryHandler) Records() []*core.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*core.Record, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of retained records.
func (h *MemoryHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// Clear discards all retained records.
func (h *MemoryHandler) Clear() {
	h.mu.Lock()
	h.records = nil
	h.mu.Unlock()
}

// Close discards all retained records
func (h *MemoryHandler) Close() error {
	h.Clear()
	return nil
}
