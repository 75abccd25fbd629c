// Package core defines the shared types and the binary encoding engine used
// across the packlog framework.
//
// It provides the Level type for severity filtering, the Privacy, FormatMode,
// and Alignment annotations attached to interpolated arguments, and the
// InterpolationContext that accumulates one log message: its format string,
// its deferred argument encoders, the byte accounting for the final buffer,
// and the preamble flags handed to the transport.
//
// The wire format is fixed little-endian regardless of platform. Each
// argument occupies a two-byte header (flag byte, byte count) immediately
// followed by its value bytes, with no padding between arguments. Header
// bytes for argument i always directly precede the value bytes of argument i;
// the buffer is the concatenation of these triples in interpolation order.
//
// Argument values are captured lazily. Interpolating an argument enqueues a
// closure holding the unevaluated source expression; the expression runs
// exactly once, when the context is flushed, and never runs at all for
// arguments dropped past the cap or for messages filtered out before flush.
package core
