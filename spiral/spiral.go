package spiral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rotations returns the total number of spiral windings around the polar
// axis for the given node count, 2·sqrt(nodes - 0.25). A function of the
// count only; callers compute it once per point set.
func Rotations(nodes int) float64 {
	return math.Sqrt(float64(nodes)-0.25) * 2
}

// Points returns the positions of all nodes of an n-node partition, in
// index order. Rotations is computed once for the whole set.
// Returns ErrNodeCount if n ≤ 0.
//
// Time: O(n), Memory: O(n).
func Points(n int) ([]r3.Vec, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNodeCount, n)
	}

	rotations := Rotations(n)
	points := make([]r3.Vec, n)
	for i := range points {
		// index is in range by construction; NewNode cannot fail here.
		node := Node{index: i, nodes: n}
		points[i] = node.Position(rotations)
	}

	return points, nil
}
