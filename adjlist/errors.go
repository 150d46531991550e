package adjlist

import "errors"

// Sentinel errors for list mutation.
var (
	// ErrListFull indicates a push onto a list already holding Capacity values.
	ErrListFull = errors.New("adjlist: list is at capacity")
	// ErrValueRange indicates a value outside [0, MaxValue].
	ErrValueRange = errors.New("adjlist: value outside storable range")
)
