package core

// HeaderSize is the fixed size of the (flag byte, byte count) pair written
// immediately before each argument's value bytes.
const HeaderSize = 2

// Argument categories occupy the high nibble of the flag byte. The integer
// subsystem only ever produces scalars; the remaining values are reserved for
// the string and object encoders sharing this buffer layout.
const (
	categoryScalar byte = 0x0

	// flagRedacted marks a private or sensitive argument in the low nibble.
	flagRedacted byte = 0x1
)

// ArgumentFlags computes the flag byte of an argument header: argument
// category in the high nibble, privacy flags in the low nibble.
func ArgumentFlags(privacy Privacy) byte {
	flags := categoryScalar << 4
	if privacy.Redacted() {
		flags |= flagRedacted
	}
	return flags
}

// Preamble summarizes a whole message for the transport as a bitfield. Bits
// accumulate monotonically over the message's arguments: once set by one
// argument, a bit is never cleared by a later one.
type Preamble byte

const (
	// PreambleRedacted is set when any argument is private or sensitive
	PreambleRedacted Preamble = 0x1
	// PreambleNonScalar is set when any argument is not a plain scalar.
	// Reserved for the string and object encoders; the integer subsystem
	// never sets it.
	PreambleNonScalar Preamble = 0x2
)

// Merge folds one argument's annotations into the preamble.
func (p Preamble) Merge(privacy Privacy, scalar bool) Preamble {
	if privacy.Redacted() {
		p |= PreambleRedacted
	}
	if !scalar {
		p |= PreambleNonScalar
	}
	return p
}

// Redacted reports whether any argument of the message is private or
// sensitive.
func (p Preamble) Redacted() bool {
	return p&PreambleRedacted != 0
}
