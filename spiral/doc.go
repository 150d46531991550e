// Package spiral places N points evenly on the unit sphere along a
// pole-to-pole spiral, and defines the small unit types the mapping is
// built from.
//
// What:
//
//   - Node identifies one tile: an index and the total count it belongs to.
//   - Fraction, Phi, Theta are float64 newtypes for the stages of the
//     mapping: area fraction → inclination → azimuth.
//   - Node.Position yields the Cartesian point on the unit sphere as a
//     gonum r3.Vec; Points computes the whole set for one count.
//
// Why:
//
//   - The inclination phi = acos(1 - 2f) compensates for the sphere's area
//     element sin(phi)·dphi·dtheta, so points land area-equidistributed
//     rather than angle-equidistributed (no polar crowding).
//   - The azimuth theta = phi·R is deliberately left unreduced modulo 2π:
//     consecutive spiral arms stay naturally offset from one another.
//   - The half-step in f = (i + 0.5)/N keeps f inside the open interval
//     (0,1), so the poles are never sampled exactly.
//
// Complexity:
//
//   - Node.Position: O(1). Points: O(N), Memory: O(N).
//
// Everything here is a pure function of its inputs: no shared state, safe
// to call concurrently.
//
// Errors:
//
//   - ErrNodeCount: node count is zero or negative.
//   - ErrIndexOutOfRange: index is negative or not below the node count.
package spiral
