package adjacency

import (
	"fmt"
	"math"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/spatial/r3"
)

// pairEntry tags one unordered point pair (i < j) with its squared
// Euclidean distance. Squared keeps the ordering of true distance without
// a square root per pair.
type pairEntry struct {
	dist float64
	i, j int
}

// pairLess orders entries ascending by distance, ties broken by the
// natural (i, j) order. No two distinct pairs compare equal, so the order
// is total and the ranking deterministic.
func pairLess(a, b pairEntry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.i != b.i {
		return a.i < b.i
	}

	return a.j < b.j
}

// rankPairs enumerates every unordered point pair and returns an ordered
// set of entries, ascending by squared distance.
// Returns ErrNotFinite naming the offending pair if any distance is NaN
// or infinite.
//
// Time: O(n² log n), Memory: O(n²) — acceptable because counts are
// bounded and each count is ranked once, then cached by the registry.
func rankPairs(points []r3.Vec) (*btree.BTreeG[pairEntry], error) {
	ranked := btree.NewBTreeG[pairEntry](pairLess)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := r3.Norm2(r3.Sub(points[i], points[j]))
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, fmt.Errorf("%w: pair (%d, %d)", ErrNotFinite, i, j)
			}
			ranked.Set(pairEntry{dist: d, i: i, j: j})
		}
	}

	return ranked, nil
}
