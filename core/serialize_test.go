package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readLE reassembles size little-endian bytes into a uint64.
func readLE(buf []byte, size int) uint64 {
	var v uint64
	for i := 0; i < size; i++ {
		v |= uint64(buf[i]) << (8 * i)
	}
	return v
}

func TestByteBuffer_RoundTripSigned(t *testing.T) {
	tests := []struct {
		name string
		size int
		vals []int64
	}{
		{name: "int8", size: 1, vals: []int64{0, -1, math.MinInt8, math.MaxInt8}},
		{name: "int16", size: 2, vals: []int64{0, -1, math.MinInt16, math.MaxInt16}},
		{name: "int32", size: 4, vals: []int64{0, -1, math.MinInt32, math.MaxInt32}},
		{name: "int64", size: 8, vals: []int64{0, -1, math.MinInt64, math.MaxInt64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.vals {
				b := NewByteBuffer(tt.size)
				b.PutUint(uint64(v), tt.size)
				require.Equal(t, tt.size, b.Pos())

				u := readLE(b.Bytes(), tt.size)
				shift := uint(64 - 8*tt.size)
				assert.Equal(t, v, int64(u<<shift)>>shift, "value %d", v)
			}
		})
	}
}

func TestByteBuffer_RoundTripUnsigned(t *testing.T) {
	tests := []struct {
		name string
		size int
		vals []uint64
	}{
		{name: "uint8", size: 1, vals: []uint64{0, 1, math.MaxUint8}},
		{name: "uint16", size: 2, vals: []uint64{0, 1, math.MaxUint16}},
		{name: "uint32", size: 4, vals: []uint64{0, 1, math.MaxUint32}},
		{name: "uint64", size: 8, vals: []uint64{0, 1, math.MaxUint64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.vals {
				b := NewByteBuffer(tt.size)
				b.PutUint(v, tt.size)
				assert.Equal(t, v, readLE(b.Bytes(), tt.size), "value %d", v)
			}
		})
	}
}

func TestByteBuffer_LittleEndianLayout(t *testing.T) {
	b := NewByteBuffer(4)
	b.PutUint(0x01020304, 4)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b.Bytes())
}

func TestByteBuffer_CursorMonotonic(t *testing.T) {
	b := NewByteBuffer(7)
	b.PutByte(0xff)
	assert.Equal(t, 1, b.Pos())
	b.PutUint(42, 2)
	assert.Equal(t, 3, b.Pos())
	b.PutUint(42, 4)
	assert.Equal(t, 7, b.Pos())
}

func TestByteBuffer_OverrunPanics(t *testing.T) {
	assert.Panics(t, func() {
		b := NewByteBuffer(2)
		b.PutUint(1, 4)
	})
	assert.Panics(t, func() {
		b := NewByteBuffer(0)
		b.PutByte(1)
	})
}

func TestWordSize(t *testing.T) {
	assert.Contains(t, []int{4, 8}, WordSize)
}

func BenchmarkByteBufferPutUint(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := NewByteBuffer(8)
		buf.PutUint(uint64(i), 8)
	}
}
