package pattern

import (
	"errors"
	"fmt"
)

// Configuration errors, reported to the caller before the simulation starts
var (
	// ErrInvalidPattern indicates fewer than 2 recognized turn characters
	ErrInvalidPattern = errors.New("pattern: need at least 2 valid turn characters (l, r, u, n)")

	// ErrMarkerCollision indicates the generator produced two identical
	// markers for distinct table entries
	ErrMarkerCollision = errors.New("pattern: duplicate marker generated for distinct entries")
)

// ErrUnknownMarker indicates a lookup with a marker that did not
// originate from the table
var ErrUnknownMarker = errors.New("pattern: marker not present in table")

// InternalError marks an invariant violation inside the simulation,
// a programming defect rather than a recoverable condition. It wraps
// the underlying cause so tests can inspect it
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal invariant violated: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
