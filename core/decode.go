package core

import "errors"

var (
	// ErrTruncatedBuffer reports a buffer that ends inside a header or value
	ErrTruncatedBuffer = errors.New("packlog: truncated argument buffer")
	// ErrInvalidSize reports a header declaring a size outside {1,2,4,8}
	ErrInvalidSize = errors.New("packlog: invalid argument size")
)

// Argument is one decoded entry of an argument buffer.
type Argument struct {
	// Flags is the header flag byte: category high nibble, privacy low nibble.
	Flags byte

	// Size is the value's serialized size in bytes.
	Size int

	value uint64
}

// Redacted reports whether the producer marked the argument private or
// sensitive.
func (a Argument) Redacted() bool {
	return a.Flags&flagRedacted != 0
}

// Uint returns the value zero-extended to 64 bits.
func (a Argument) Uint() uint64 {
	return a.value
}

// Int returns the value sign-extended from its serialized width to 64 bits.
func (a Argument) Int() int64 {
	shift := uint(64 - 8*a.Size)
	return int64(a.value<<shift) >> shift
}

// DecodeArguments walks a header/value stream produced by a flush and
// returns the arguments in wire order. Values are read little-endian, the
// order the producer wrote them in. Decoding is the consumer side of the
// protocol, so malformed input is an error here rather than a panic.
func DecodeArguments(buf []byte) ([]Argument, error) {
	var args []Argument
	for pos := 0; pos < len(buf); {
		if len(buf)-pos < HeaderSize {
			return nil, ErrTruncatedBuffer
		}
		flags := buf[pos]
		size := int(buf[pos+1])
		pos += HeaderSize

		switch size {
		case 1, 2, 4, 8:
		default:
			return nil, ErrInvalidSize
		}
		if len(buf)-pos < size {
			return nil, ErrTruncatedBuffer
		}

		var v uint64
		for i := 0; i < size; i++ {
			v |= uint64(buf[pos+i]) << (8 * i)
		}
		pos += size
		args = append(args, Argument{Flags: flags, Size: size, value: v})
	}
	return args, nil
}
