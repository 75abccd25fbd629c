package logger

import (
	"github.com/packlog/packlog/core"
	"github.com/packlog/packlog/formatter"
)

// Message assembles one log statement: literal text interleaved with typed,
// lazily captured integer arguments. All methods return the message for
// chaining. A Message belongs to one log call and must not be reused.
type Message struct {
	ctx *core.InterpolationContext
}

// NewMessage creates a standalone message with the default argument cap.
// Messages passed to a Logger callback are created by the logger instead.
func NewMessage() *Message {
	return newMessage(core.DefaultMaxArgumentCount)
}

func newMessage(maxArgs int) *Message {
	return &Message{ctx: core.NewInterpolationContext(maxArgs)}
}

// Literal appends message text. A '%' in the text is escaped and cannot be
// mistaken for a specifier.
func (m *Message) Literal(s string) *Message {
	m.ctx.AppendLiteral(s)
	return m
}

// append routes one typed interpolation through the specifier builder and
// the encoding core. bits is the serialized width, not the rendered one.
func (m *Message) append(bits int, signed bool, opts []Option, value core.ArgumentEncoder) {
	o := applyOptions(opts)
	token := formatter.Specifier(bits, signed, o.mode, o.align, o.privacy)
	m.ctx.AppendArgument(token, bits/8, o.privacy, value)
}

// Int8 interpolates an 8-bit signed integer. The value function runs at
// flush time, not here, and never runs if the argument is dropped.
func (m *Message) Int8(value func() int8, opts ...Option) *Message {
	m.append(8, true, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(int64(value())), 1)
	})
	return m
}

// Int16 interpolates a 16-bit signed integer.
func (m *Message) Int16(value func() int16, opts ...Option) *Message {
	m.append(16, true, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(int64(value())), 2)
	})
	return m
}

// Int32 interpolates a 32-bit signed integer.
func (m *Message) Int32(value func() int32, opts ...Option) *Message {
	m.append(32, true, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(int64(value())), 4)
	})
	return m
}

// Int64 interpolates a 64-bit signed integer.
func (m *Message) Int64(value func() int64, opts ...Option) *Message {
	m.append(64, true, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(value()), 8)
	})
	return m
}

// Int interpolates a platform-width signed integer. It serializes at
// core.WordSize bytes.
func (m *Message) Int(value func() int, opts ...Option) *Message {
	m.append(core.WordSize*8, true, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(int64(value())), core.WordSize)
	})
	return m
}

// Uint8 interpolates an 8-bit unsigned integer.
func (m *Message) Uint8(value func() uint8, opts ...Option) *Message {
	m.append(8, false, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(value()), 1)
	})
	return m
}

// Uint16 interpolates a 16-bit unsigned integer.
func (m *Message) Uint16(value func() uint16, opts ...Option) *Message {
	m.append(16, false, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(value()), 2)
	})
	return m
}

// Uint32 interpolates a 32-bit unsigned integer.
func (m *Message) Uint32(value func() uint32, opts ...Option) *Message {
	m.append(32, false, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(value()), 4)
	})
	return m
}

// Uint64 interpolates a 64-bit unsigned integer.
func (m *Message) Uint64(value func() uint64, opts ...Option) *Message {
	m.append(64, false, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(value(), 8)
	})
	return m
}

// Uint interpolates a platform-width unsigned integer. It serializes at
// core.WordSize bytes.
func (m *Message) Uint(value func() uint, opts ...Option) *Message {
	m.append(core.WordSize*8, false, opts, func(buf *core.ByteBuffer) {
		buf.PutUint(uint64(value()), core.WordSize)
	})
	return m
}

// ArgumentCount returns the number of accepted arguments so far.
func (m *Message) ArgumentCount() int {
	return m.ctx.ArgumentCount()
}

// TotalBytes returns the buffer size a flush of this message will produce.
func (m *Message) TotalBytes() int {
	return m.ctx.TotalBytes()
}

// Format returns the format string accumulated so far.
func (m *Message) Format() string {
	return m.ctx.Format()
}

// Encode flushes the message, evaluating the deferred arguments in
// insertion order. It may be called once.
func (m *Message) Encode() (core.Preamble, string, []byte) {
	return m.ctx.Encode()
}
