// Package spheretiles distributes a fixed number of tiles evenly over the
// surface of a sphere and computes, for every tile count it is asked about,
// a sparse neighbour graph connecting nearby tiles.
//
// 🌍 What is spheretiles?
//
//	A small, deterministic library that brings together:
//		• Spiral placement: N points area-equidistributed on the unit sphere
//		• Pairwise ranking: every point pair ordered by squared distance
//		• Greedy edge assignment: closest pairs first, up to a fixed budget
//		• Compact adjacency lists: ≤8 neighbours per tile, no heap per node
//		• A registry: each tile count built lazily, exactly once, then cached
//
// ✨ Why choose spheretiles?
//
//   - Deterministic – same count in, bit-identical graph out
//   - Dense in memory – one inline array per tile, hundreds of tiles per page
//   - Concurrency-safe – ready graphs are immutable and shared by reference
//
// Everything is organized under three subpackages:
//
//	spiral/    — Node, unit types, and the pole-to-pole spiral parameterization
//	adjlist/   — the fixed-capacity, length-prefixed neighbour list
//	adjacency/ — distance ranking, graph builder, registry, tile-count helpers
//
// Typical entry point: map a planet radius to a tile count, then ask the
// registry for its graph:
//
//	reg := adjacency.NewRegistry()
//	n := adjacency.TileCountForRadius(6371e3) // Earth → 96 tiles
//	g, err := reg.Get(n)
//
// Consumers walk g[i] for each tile i; the neighbour order is closest-first
// within the budget walk, which continent growth and diffusion code rely on.
package spheretiles
