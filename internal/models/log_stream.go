package models

// LogStream identifies one logical log stream: a live file plus its rotated segments.
// It selects the grammar, the segment naming convention and the record layout.
type LogStream string

const (
	StreamAccess LogStream = "access"
	StreamError  LogStream = "error"
)

// Streams lists every known stream in a fixed order.
var Streams = []LogStream{StreamAccess, StreamError}

func (s LogStream) Valid() bool {
	return s == StreamAccess || s == StreamError
}

// LogRecord is a record materialised for a client, tagged with its stream.
type LogRecord interface {
	Stream() LogStream
}
