package spiral

import "errors"

// Sentinel errors for node construction.
var (
	// ErrNodeCount indicates a zero or negative total node count.
	ErrNodeCount = errors.New("spiral: node count must be positive")
	// ErrIndexOutOfRange indicates an index outside [0, nodes).
	ErrIndexOutOfRange = errors.New("spiral: node index out of range")
)
