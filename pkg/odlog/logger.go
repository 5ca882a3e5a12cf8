// Package odlog defines the access-event logging interface used by the
// front ends built on the object dictionary. The core od package stays
// silent; consoles, snapshot stores, and protocol servers emit an Event
// per dictionary access through a Logger the application supplies.
package odlog

// Logger is the interface applications implement to receive dictionary
// access events. Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records an access event. Implementations must be thread-safe.
	// The event should be processed quickly or queued; blocking slows
	// the access path that emitted it.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}

// MultiLogger sends events to multiple loggers, for combining console
// output with a file or network sink.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that sends events to all
// provided loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log sends the event to all configured loggers.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
