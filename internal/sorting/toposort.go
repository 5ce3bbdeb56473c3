package sorting

// TopologicalSort returns vertex indices in an order compatible with
// the edge set: for every edge u->v, u appears before v. It runs a DFS
// over all vertices in arena order, recording each vertex in
// postorder, then reverses that order — any linearisation compatible
// with the edges, not necessarily unique.
func (g *PluginGraph) TopologicalSort() []int {
	visited := make([]bool, g.Len())
	order := make([]int, 0, g.Len())

	var visit func(u int)
	visit = func(u int) {
		visited[u] = true
		for _, e := range g.forward[u] {
			if !visited[e.to] {
				visit(e.to)
			}
		}
		order = append(order, u)
	}

	for i := 0; i < g.Len(); i++ {
		if !visited[i] {
			visit(i)
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// IsHamiltonianPath walks order and returns the first consecutive pair
// with no direct edge between them, if any. A non-ok result is logged
// as an error by the driver but does not fail the sort.
func (g *PluginGraph) IsHamiltonianPath(order []int) (gap [2]int, ok bool) {
	for i := 0; i+1 < len(order); i++ {
		if !g.EdgeExists(order[i], order[i+1]) {
			return [2]int{order[i], order[i+1]}, false
		}
	}
	return [2]int{}, true
}
