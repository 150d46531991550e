package adjacency

import (
	"fmt"

	"github.com/planetsim/spheretiles/spiral"
)

// Build constructs the neighbour graph for n spiral-placed nodes: pairs
// are admitted as edges in ascending distance order until the edge budget
// int(n · EdgeBudgetFactor) is spent or no pairs remain. Both endpoints
// of an admitted pair record each other; the ranking yields each
// unordered pair exactly once, so no list ever holds duplicates.
//
// Counts 0 and 1 yield an all-empty graph without any comparisons.
//
// Returns ErrNodeRange for counts outside [0, MaxNodes], ErrNotFinite for
// corrupted geometry, or a wrapped adjlist.ErrListFull naming the node
// whose degree outgrew the compact list. No partial graph ever escapes a
// failed build.
func Build(n int) (Graph, error) {
	if n < 0 || n > MaxNodes {
		return nil, fmt.Errorf("%w: %d", ErrNodeRange, n)
	}

	graph := make(Graph, n)
	if n <= 1 {
		return graph, nil // no pairs exist
	}

	points, err := spiral.Points(n)
	if err != nil {
		return nil, err
	}

	ranked, err := rankPairs(points)
	if err != nil {
		return nil, fmt.Errorf("%w (count %d)", err, n)
	}

	budget := int(float64(n) * EdgeBudgetFactor)
	taken := 0
	var pushErr error
	ranked.Scan(func(p pairEntry) bool {
		if taken >= budget {
			return false
		}
		if err = graph[p.i].Push(p.j); err != nil {
			pushErr = fmt.Errorf("%w: node %d (count %d)", err, p.i, n)

			return false
		}
		if err = graph[p.j].Push(p.i); err != nil {
			pushErr = fmt.Errorf("%w: node %d (count %d)", err, p.j, n)

			return false
		}
		taken++

		return true
	})
	if pushErr != nil {
		return nil, pushErr
	}

	return graph, nil
}
