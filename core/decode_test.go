package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArguments_RoundTrip(t *testing.T) {
	c := NewInterpolationContext(0)
	v := int64(-7)
	appendInt(c, "%d", 4, Public, uint64(v))
	appendInt(c, "%{private}llu", 8, Private, 300)
	appendInt(c, "%hhu", 1, Public, 255)
	_, _, buf := c.Encode()

	args, err := DecodeArguments(buf)
	require.NoError(t, err)
	require.Len(t, args, 3)

	assert.Equal(t, 4, args[0].Size)
	assert.False(t, args[0].Redacted())
	assert.Equal(t, int64(-7), args[0].Int())

	assert.Equal(t, 8, args[1].Size)
	assert.True(t, args[1].Redacted())
	assert.Equal(t, uint64(300), args[1].Uint())

	assert.Equal(t, 1, args[2].Size)
	assert.Equal(t, uint64(255), args[2].Uint())
	assert.Equal(t, int64(-1), args[2].Int(), "sign extension from one byte")
}

func TestDecodeArguments_Empty(t *testing.T) {
	args, err := DecodeArguments(nil)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestDecodeArguments_Truncated(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "lone flag byte", buf: []byte{0x00}},
		{name: "value cut short", buf: []byte{0x00, 0x04, 0x01, 0x02}},
		{name: "second header cut", buf: []byte{0x00, 0x01, 0xff, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeArguments(tt.buf)
			assert.ErrorIs(t, err, ErrTruncatedBuffer)
		})
	}
}

func TestDecodeArguments_InvalidSize(t *testing.T) {
	_, err := DecodeArguments([]byte{0x00, 0x03, 0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrInvalidSize)
}
