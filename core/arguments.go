package core

// DefaultMaxArgumentCount caps how many interpolated arguments one message
// may carry. It mirrors the transport ABI limit; interpolations beyond the
// cap are dropped without trace.
const DefaultMaxArgumentCount = 48

// ArgumentEncoder is one deferred encoding action. Invoked at most once, at
// flush time, it writes its argument's header pair and value bytes at the
// buffer's cursor. The argument's source expression stays unevaluated inside
// the closure until then.
type ArgumentEncoder func(*ByteBuffer)

// ArgumentList holds the deferred encoders of one message in insertion order
// and enforces the argument cap.
type ArgumentList struct {
	encoders []ArgumentEncoder
	max      int
}

// NewArgumentList creates a list bounded at max arguments. Non-positive max
// falls back to DefaultMaxArgumentCount.
func NewArgumentList(max int) *ArgumentList {
	if max <= 0 {
		max = DefaultMaxArgumentCount
	}
	return &ArgumentList{max: max}
}

// TryAppend adds enc unless the cap is reached. The result tells the caller
// whether the format string and byte accounting may be extended for this
// argument as well; all three must stay in lockstep.
func (a *ArgumentList) TryAppend(enc ArgumentEncoder) bool {
	if len(a.encoders) >= a.max {
		return false
	}
	a.encoders = append(a.encoders, enc)
	return true
}

// Len returns the number of accepted arguments.
func (a *ArgumentList) Len() int {
	return len(a.encoders)
}

// EncodeTo invokes every deferred encoder in insertion order against buf,
// then discards them.
func (a *ArgumentList) EncodeTo(buf *ByteBuffer) {
	for _, enc := range a.encoders {
		enc(buf)
	}
	a.encoders = nil
}
