// Package adjacency defines shared constants for graph construction and
// the radius → tile count mapping.
package adjacency

import "github.com/planetsim/spheretiles/adjlist"

//-----------------------------------------------------------------------------
// Edge budget
//-----------------------------------------------------------------------------

// EdgeBudgetFactor scales the node count into the number of closest pairs
// admitted as edges. Taking exactly 3 edges per node is not enough to
// complete the graph; the 0.05 headroom per node closes the remaining
// gaps across the supported range. Empirical, validated by the
// shared-neighbour density sweep in the tests.
const EdgeBudgetFactor = 3.05

//-----------------------------------------------------------------------------
// Node count limits
//-----------------------------------------------------------------------------

// MaxNodes is the largest node count whose indices fit the compact list's
// storage width.
const MaxNodes = adjlist.MaxValue + 1

//-----------------------------------------------------------------------------
// Radius → tile count mapping
//-----------------------------------------------------------------------------

const (
	// TileCountStep is the granularity of recommended tile counts: results
	// are floored to a multiple of this step.
	TileCountStep = 4

	// MaxTileCount caps the recommended tile count for large radii.
	MaxTileCount = 256

	// referenceRadiusMeters and referenceTileCount anchor the linear
	// radius scale: a 6350 km sphere maps to 96 tiles.
	referenceRadiusMeters = 6350e3
	referenceTileCount    = 96
)
