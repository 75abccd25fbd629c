package core

import "time"

// Record is one flushed log message as handed to a transport handler:
// the preamble flags, the format string, and the packed argument buffer,
// plus the timestamp and severity the driver attached.
type Record struct {
	Time     time.Time
	Level    Level
	Preamble Preamble
	Format   string
	Buffer   []byte
}
