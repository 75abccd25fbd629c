package core

// Privacy controls whether an interpolated argument may appear in rendered
// output or must be redacted by the consumer. The producer always serializes
// the real value; redaction happens at render time, driven by the flag byte
// and the specifier annotation.
type Privacy uint8

const (
	// Public arguments render as their value (default)
	Public Privacy = iota
	// Private arguments are redacted from rendered output
	Private
	// Sensitive arguments are redacted and flagged for masking
	Sensitive
)

// String returns the specifier annotation name of the privacy level
func (p Privacy) String() string {
	switch p {
	case Public:
		return "public"
	case Private:
		return "private"
	case Sensitive:
		return "sensitive"
	default:
		return "unknown"
	}
}

// Redacted reports whether the argument's value must not appear in rendered
// output.
func (p Privacy) Redacted() bool {
	return p == Private || p == Sensitive
}
