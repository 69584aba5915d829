package field

import "github.com/google/uuid"

// IDPrefix keeps generated identifiers valid as HTML ids, which must not start
// with a digit.
const IDPrefix = "fg-"

// NewID returns a process-unique identifier for a field instance.
func NewID() string {
	return IDPrefix + uuid.NewString()
}
