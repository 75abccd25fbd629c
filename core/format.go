package core

// FormatMode selects the numeric base an integer argument is rendered in.
type FormatMode uint8

const (
	// Decimal renders base 10 (default)
	Decimal FormatMode = iota
	// Hex renders base 16, lowercase
	Hex
	// Octal renders base 8
	Octal
)

// String returns the string representation of the mode
func (m FormatMode) String() string {
	switch m {
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	case Octal:
		return "octal"
	default:
		return "unknown"
	}
}

// Alignment specifies the minimum field width of a rendered argument.
// Zero means no alignment; positive values right-align within the given
// width, negative values left-align, following the message-template
// convention.
type Alignment int

// AlignNone leaves the rendered value unpadded.
const AlignNone Alignment = 0

// AlignLeft pads the rendered value on the right to at least width columns.
func AlignLeft(width int) Alignment {
	return Alignment(-width)
}

// AlignRight pads the rendered value on the left to at least width columns.
func AlignRight(width int) Alignment {
	return Alignment(width)
}

// Left reports whether the alignment pads on the right.
func (a Alignment) Left() bool {
	return a < 0
}

// Width returns the field width, regardless of direction.
func (a Alignment) Width() int {
	if a < 0 {
		return int(-a)
	}
	return int(a)
}
