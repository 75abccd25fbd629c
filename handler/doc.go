// Package handler provides the Handler interface and its built-in
// implementations for dispatching flushed log records to a transport.
//
// A handler receives the finished (preamble, format string, argument buffer)
// triple as a core.Record. It must not assume the buffer outlives the Handle
// call unless it copies it; the built-in handlers that retain records copy
// defensively.
//
// Built-in handlers:
//
//   - MemoryHandler retains records in memory for inspection, primarily in
//     tests and diagnostics.
//   - MultiHandler fans a record out to multiple child handlers.
//   - ZapHandler decodes and renders each record and re-emits it through a
//     zap.Logger. It is the fallback transport for platforms without a
//     native binary logging facility, and the point where privacy redaction
//     becomes visible: redacted arguments leave the handler as masks, never
//     as values.
package handler
