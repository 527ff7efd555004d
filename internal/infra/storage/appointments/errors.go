package appointments

import "errors"

var (
	// ErrEncode is returned when the collection cannot be serialized.
	ErrEncode = errors.New("appointments.repository: failed to encode collection")

	// ErrWrite is returned when the underlying storage rejects the
	// write (for example, quota exceeded).
	ErrWrite = errors.New("appointments.repository: failed to persist collection")
)
