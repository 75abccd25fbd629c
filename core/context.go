package core

import "strings"

// InterpolationContext accumulates one log message: the running format
// string, the deferred argument encoders, the byte accounting for the final
// buffer, and the preamble flags. A context belongs to a single log call on
// a single goroutine; it is never shared and needs no locking.
//
// The context has two states. While accumulating it accepts AppendLiteral
// and AppendArgument calls; Encode transitions it to flushed, after which
// further appends are dropped and a second Encode panics.
type InterpolationContext struct {
	format     strings.Builder
	args       *ArgumentList
	totalBytes int
	preamble   Preamble
	flushed    bool
}

// NewInterpolationContext creates a context accepting at most maxArgs
// interpolated arguments. Non-positive maxArgs falls back to
// DefaultMaxArgumentCount.
func NewInterpolationContext(maxArgs int) *InterpolationContext {
	return &InterpolationContext{args: NewArgumentList(maxArgs)}
}

// AppendLiteral appends message text to the format string, escaping '%' so
// the text can never be mistaken for a specifier token.
func (c *InterpolationContext) AppendLiteral(s string) {
	if c.flushed {
		return
	}
	c.format.WriteString(strings.ReplaceAll(s, "%", "%%"))
}

// AppendArgument records one interpolated argument: the specifier token goes
// onto the format string, byteCount plus HeaderSize onto the running total,
// privacy onto the preamble, and a deferred encoder that writes the header
// pair immediately followed by the value bytes. Keeping header and value in
// one closure makes the layout invariant structural: header i cannot end up
// anywhere but directly before value i.
//
// Past the argument cap, or after flush, the interpolation is dropped whole:
// no token, no accounting, no encoder.
func (c *InterpolationContext) AppendArgument(token string, byteCount int, privacy Privacy, value ArgumentEncoder) bool {
	if c.flushed {
		return false
	}
	flags := ArgumentFlags(privacy)
	ok := c.args.TryAppend(func(buf *ByteBuffer) {
		buf.PutByte(flags)
		buf.PutByte(byte(byteCount))
		value(buf)
	})
	if !ok {
		return false
	}
	c.format.WriteString(token)
	c.totalBytes += HeaderSize + byteCount
	c.preamble = c.preamble.Merge(privacy, true)
	return true
}

// ArgumentCount returns the number of accepted arguments.
func (c *InterpolationContext) ArgumentCount() int {
	return c.args.Len()
}

// TotalBytes returns the byte size the flushed buffer will have: the sum of
// header and value bytes over all accepted arguments.
func (c *InterpolationContext) TotalBytes() int {
	return c.totalBytes
}

// Preamble returns the flags accumulated so far.
func (c *InterpolationContext) Preamble() Preamble {
	return c.preamble
}

// Format returns the format string accumulated so far.
func (c *InterpolationContext) Format() string {
	return c.format.String()
}

// Encode flushes the context: it allocates a buffer of exactly TotalBytes,
// runs the deferred encoders in insertion order, and returns the preamble,
// the format string, and the filled buffer. Each encoder writes exactly the
// bytes its header declared, so the cursor lands on the buffer's end.
// Encoding a context twice is a driver bug.
func (c *InterpolationContext) Encode() (Preamble, string, []byte) {
	if c.flushed {
		panic("packlog: interpolation context encoded twice")
	}
	c.flushed = true
	buf := NewByteBuffer(c.totalBytes)
	c.args.EncodeTo(buf)
	if buf.Pos() != c.totalBytes {
		panic("packlog: argument buffer accounting mismatch")
	}
	return c.preamble, c.format.String(), buf.Bytes()
}
