package adjacency

import "errors"

// Sentinel errors for graph construction and registry lookups.
var (
	// ErrNodeRange indicates a node count outside [0, MaxNodes].
	ErrNodeRange = errors.New("adjacency: node count out of range")
	// ErrNotFinite indicates a pairwise distance that is NaN or infinite —
	// corrupted input geometry, never a runtime condition to recover from.
	ErrNotFinite = errors.New("adjacency: non-finite pair distance")
)
