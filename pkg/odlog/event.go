package odlog

import "time"

// Op classifies the dictionary access that produced an event.
type Op uint8

const (
	// OpRead is a value read through Get.
	OpRead Op = 0
	// OpWrite is a value write through Set.
	OpWrite Op = 1
	// OpQuery is a textual path resolution.
	OpQuery Op = 2
	// OpSnapshot is a bulk save or restore of dictionary values.
	OpSnapshot Op = 3
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpQuery:
		return "QUERY"
	case OpSnapshot:
		return "SNAPSHOT"
	default:
		return "UNKNOWN"
	}
}

// Event is one dictionary access, successful or not.
type Event struct {
	// Timestamp when the access occurred.
	Timestamp time.Time

	// Op is the access kind.
	Op Op

	// Address is the object's numeric address, when resolved.
	Address uint16

	// Sub is the addressed sub-index; meaningful for reads and writes.
	Sub uint8

	// Object is the object name, when known.
	Object string

	// Detail carries op-specific text: the query string for OpQuery,
	// the snapshot path for OpSnapshot.
	Detail string

	// Err is the access failure, nil on success.
	Err error
}

// Now stamps an event with the current time if unset and returns it.
func (e Event) Now() Event {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return e
}
