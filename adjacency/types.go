package adjacency

import "github.com/planetsim/spheretiles/adjlist"

// Graph is the full neighbour structure for one tile count: one compact
// list per node index. A Graph is immutable once built and owned by the
// registry entry that produced it; readers share it by reference without
// further synchronization.
type Graph []adjlist.List

// Nodes returns the number of nodes in the graph.
func (g Graph) Nodes() int { return len(g) }

// Degree returns node i's neighbour count.
func (g Graph) Degree(i int) int { return g[i].Len() }

// Neighbors returns node i's neighbours as a fresh slice, in the order
// they were assigned (closest admitted pairs first). Hot paths should
// index g[i] directly and use At/Len to avoid the allocation.
func (g Graph) Neighbors(i int) []int { return g[i].Values() }
