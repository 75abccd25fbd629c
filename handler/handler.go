package handler

import (
	"github.com/packlog/packlog/core"
)

// Handler defines the interface for log record transports
type Handler interface {
	// Handle consumes one flushed log record
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}
