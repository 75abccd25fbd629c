package handler

import (
	"github.com/packlog/packlog/core"
)

// MultiHandler sends log records to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle passes the record to every child handler. All children see the
// record even when an earlier one fails; the last error wins.
func (h *MultiHandler) Handle(rec *core.Record) error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Handle(rec); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
