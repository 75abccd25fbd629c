package core

// Level represents the severity level of a log message. The ordering mirrors
// the unified-logging convention: Debug and Info rank below Default, so a
// logger gated at LevelDefault discards them.
type Level int8

const (
	// LevelDebug for messages useful only while actively debugging
	LevelDebug Level = iota
	// LevelInfo for informational messages
	LevelInfo
	// LevelDefault for messages that should always be captured (default gate)
	LevelDefault
	// LevelError for process-level errors
	LevelError
	// LevelFault for system-level faults
	LevelFault
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelDefault:
		return "DEFAULT"
	case LevelError:
		return "ERROR"
	case LevelFault:
		return "FAULT"
	default:
		return "UNKNOWN"
	}
}
