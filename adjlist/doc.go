// Package adjlist provides List, a fixed-capacity, length-prefixed
// neighbour list stored inline — the per-tile adjacency record of a
// spherical tile graph.
//
// What:
//
//   - List holds up to Capacity (8) neighbour indices as uint16 values in
//     a fixed-size array, prefixed by an explicit count. The zero value is
//     the valid empty list.
//   - Push appends in construction order; Contains scans the occupied
//     prefix; And intersects two lists; At/Values expose the prefix for
//     iteration.
//
// Why:
//
//   - Graphs here have hundreds of nodes, each with at most 8 neighbours.
//     One inline array per node keeps the whole graph in a handful of
//     cache lines with zero per-node heap allocation — the access
//     patterns that matter (iteration, membership, intersection) run at
//     simulation frequency.
//   - uint16 indices cover every node count the registry accepts (65535),
//     twice the width the smallest graphs need but one design instead of
//     two.
//
// Complexity:
//
//   - Push, At, Len: O(1). Contains: O(Capacity). And: O(Capacity²).
//
// Errors:
//
//   - ErrListFull: push beyond Capacity.
//   - ErrValueRange: value negative or above MaxValue.
package adjlist
