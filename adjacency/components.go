package adjacency

// Components groups the graph's nodes into connected components: each
// component is a slice of node indices in BFS discovery order, components
// ordered by their lowest node index. An empty graph has no components.
//
// The edge budget makes full connectivity a statistical consequence, not
// a built-in guarantee; this is the read-only helper callers and tests
// use to observe it.
//
// Time: O(n·Capacity), Memory: O(n).
func (g Graph) Components() [][]int {
	seen := make([]bool, len(g))
	var comps [][]int

	for start := range g {
		if seen[start] {
			continue
		}
		// BFS to collect the component
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for k := 0; k < g[u].Len(); k++ {
				v := g[u].At(k)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether every node is reachable from every other.
// Graphs with fewer than two nodes are trivially connected.
func (g Graph) Connected() bool {
	return len(g) < 2 || len(g.Components()) == 1
}
