package core

import "math/bits"

// WordSize is the serialized size in bytes of Int and Uint arguments: the
// platform word width, 8 on all supported platforms.
const WordSize = bits.UintSize / 8

// ByteBuffer is the destination of one flush: a preallocated slice plus a
// write cursor that only moves forward. All multi-byte writes are
// little-endian; the wire format pins the byte order explicitly so buffers
// stay portable between producer and consumer architectures.
//
// The buffer must be sized for the writes it will receive. Overrunning it
// means the accumulated byte count and the actual writes disagree, which is
// a bug in the driver, not a recoverable condition.
type ByteBuffer struct {
	buf []byte
	pos int
}

// NewByteBuffer allocates a buffer of exactly size bytes with the cursor at
// the start.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{buf: make([]byte, size)}
}

// Pos returns the current write position.
func (b *ByteBuffer) Pos() int {
	return b.pos
}

// Bytes returns the underlying buffer.
func (b *ByteBuffer) Bytes() []byte {
	return b.buf
}

// PutByte writes a single byte at the cursor and advances it by one.
func (b *ByteBuffer) PutByte(v byte) {
	if b.pos >= len(b.buf) {
		panic("packlog: write past end of argument buffer")
	}
	b.buf[b.pos] = v
	b.pos++
}

// PutUint writes the low size bytes of v in little-endian order and advances
// the cursor by size. Signed values must be sign-extended into the uint64 by
// the caller; converting through the value's own signed width does this
// (for example uint64(int64(v)) for an int32 v).
func (b *ByteBuffer) PutUint(v uint64, size int) {
	if b.pos+size > len(b.buf) {
		panic("packlog: write past end of argument buffer")
	}
	for i := 0; i < size; i++ {
		b.buf[b.pos+i] = byte(v >> (8 * i))
	}
	b.pos += size
}
