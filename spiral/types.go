// Package spiral defines the Node value type and the unit types
// (Fraction, Phi, Theta, Coordinate) of the spherical spiral mapping.
package spiral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Fraction is a point's share of the pole-to-pole sweep, in the open
// interval (0, 1). It is the area fraction of the sphere above the point.
type Fraction float64

// Phi is the inclination angle measured from the north pole, in [0, π].
type Phi float64

// Theta is the azimuthal spiral angle in [0, R·π], where R is the number
// of spiral rotations for the node count. It is not reduced modulo 2π.
type Theta float64

// Phi converts an area fraction to its equal-area inclination,
// phi = acos(1 - 2f).
func (f Fraction) Phi() Phi {
	return Phi(math.Acos(1 - 2*float64(f)))
}

// Fraction inverts the equal-area mapping, f = (1 - cos phi) / 2.
// Round-trips Fraction.Phi to floating-point tolerance.
func (p Phi) Fraction() Fraction {
	return Fraction(0.5 * (1 - math.Cos(float64(p))))
}

// Theta derives the azimuth for this inclination given the total number of
// spiral rotations, theta = phi · rotations.
func (p Phi) Theta(rotations float64) Theta {
	return Theta(float64(p) * rotations)
}

// Coordinate is a point on the unit sphere in spherical form.
type Coordinate struct {
	Phi   Phi
	Theta Theta
}

// Position converts the spherical coordinate to Cartesian form:
// (cosθ·sinφ, sinθ·sinφ, cosφ). The result is unit length up to
// floating-point error.
func (c Coordinate) Position() r3.Vec {
	sinPhi, cosPhi := math.Sincos(float64(c.Phi))
	sinTheta, cosTheta := math.Sincos(float64(c.Theta))

	return r3.Vec{
		X: cosTheta * sinPhi,
		Y: sinTheta * sinPhi,
		Z: cosPhi,
	}
}

// Node identifies one tile of a spherical partition: an index in
// [0, nodes) and the total count it belongs to. Node is an immutable
// comparable value type.
type Node struct {
	index int
	nodes int
}

// NewNode validates and constructs a Node.
// Returns ErrNodeCount if nodes ≤ 0, ErrIndexOutOfRange if index is not
// in [0, nodes).
func NewNode(index, nodes int) (Node, error) {
	if nodes <= 0 {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeCount, nodes)
	}
	if index < 0 || index >= nodes {
		return Node{}, fmt.Errorf("%w: index %d, nodes %d", ErrIndexOutOfRange, index, nodes)
	}

	return Node{index: index, nodes: nodes}, nil
}

// Index returns the node's index within its partition.
func (n Node) Index() int { return n.index }

// Nodes returns the total node count of the partition.
func (n Node) Nodes() int { return n.nodes }

// Fraction returns (index + 0.5) / nodes, the node's area fraction.
// The half-step keeps the result strictly inside (0, 1).
func (n Node) Fraction() Fraction {
	return Fraction((float64(n.index) + 0.5) / float64(n.nodes))
}

// Coordinate returns the node's spherical coordinate for the given number
// of spiral rotations.
func (n Node) Coordinate(rotations float64) Coordinate {
	phi := n.Fraction().Phi()

	return Coordinate{Phi: phi, Theta: phi.Theta(rotations)}
}

// Position returns the node's Cartesian position on the unit sphere for
// the given number of spiral rotations.
func (n Node) Position(rotations float64) r3.Vec {
	return n.Coordinate(rotations).Position()
}
