// Package adjacency builds and caches the sparse neighbour graph of a
// spherical tile partition: which tiles touch which, for any tile count.
//
// What:
//
//   - Build ranks every point pair of a spiral-placed point set by squared
//     distance and greedily admits the closest pairs as edges, up to a
//     budget of ~3.05 edges per node, into one compact adjlist.List per
//     node.
//   - Graph is the result: one list per node index, immutable once built.
//   - Registry caches one Graph per distinct node count, building each
//     lazily and exactly once; repeated lookups are served by reference.
//   - TileCountForRadius and TileAreaForRadius map a physical sphere
//     radius to the recommended tile count and per-tile surface area.
//
// Why:
//
//   - Full pairwise ranking is O(n²), but counts stay in the hundreds and
//     each count is built at most once per registry, so the cost is paid
//     once and the graph is read millions of times by terrain growth and
//     diffusion passes.
//   - Exactly 3 edges per node leaves isolated components; the 0.05
//     headroom per node closes them statistically. The graph is not a
//     minimum spanning structure — only small and locally dense, which is
//     what the consumers need.
//   - Edge assignment walks strictly ascending distance, so every list
//     holds its closest admitted neighbours first. Distance-sensitive
//     consumers rely on that order.
//
// Complexity:
//
//   - Build: O(n² log n) time, O(n²) transient memory, O(n) result.
//   - Registry.Get: O(1) once ready; one Build on first request per count.
//
// Errors:
//
//   - ErrNodeRange: node count negative or beyond MaxNodes.
//   - ErrNotFinite: a pairwise distance is NaN or infinite.
//   - adjlist.ErrListFull (wrapped): a node's degree outgrew the compact
//     list — the capacity constant does not cover the requested range.
//
// All are unrecoverable at the point of detection: they signal a
// configuration mismatch, not a transient condition, and the registry
// never caches a failed build.
package adjacency
