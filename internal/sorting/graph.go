package sorting

import "github.com/loot-go/lootsort/internal/filename"

type edgeRef struct {
	to       int
	edgeType EdgeType
}

// PluginGraph is the vertex arena plus forward/reverse adjacency for
// one partition (masters or non-masters) of one sort. It is not
// thread-safe and is owned exclusively by the driver for the duration
// of building and linearising it.
type PluginGraph struct {
	vertices []PluginSortingData
	index    map[string]int

	forward map[int][]edgeRef
	reverse map[int][]int

	paths *PathsCache
	fc    *filename.Cache
}

// NewPluginGraph creates an empty graph backed by fc for
// locale-invariant name lookups.
func NewPluginGraph(fc *filename.Cache) *PluginGraph {
	return &PluginGraph{
		index:   make(map[string]int),
		forward: make(map[int][]edgeRef),
		reverse: make(map[int][]int),
		paths:   NewPathsCache(),
		fc:      fc,
	}
}

// AddVertex appends data as a new vertex and returns its index.
// Vertices are created once and never removed.
func (g *PluginGraph) AddVertex(data PluginSortingData) int {
	idx := len(g.vertices)
	g.vertices = append(g.vertices, data)
	g.index[g.fc.Normalize(data.Name)] = idx
	return idx
}

// Len returns the number of vertices in the graph.
func (g *PluginGraph) Len() int { return len(g.vertices) }

// Vertex returns a mutable pointer to the vertex at i, so callers can
// populate fields (like PredecessorGroupPlugins) after all vertices
// exist.
func (g *PluginGraph) Vertex(i int) *PluginSortingData { return &g.vertices[i] }

// VertexByName looks up a vertex by name using the locale-invariant
// comparator, returning its index and whether it was found.
func (g *PluginGraph) VertexByName(name string) (int, bool) {
	idx, ok := g.index[g.fc.Normalize(name)]
	return idx, ok
}

// EdgeExists reports direct adjacency only; it is not a reachability
// test.
func (g *PluginGraph) EdgeExists(u, v int) bool {
	for _, e := range g.forward[u] {
		if e.to == v {
			return true
		}
	}
	return false
}

// EdgeTypeOf returns the type of the direct edge u->v, if any.
func (g *PluginGraph) EdgeTypeOf(u, v int) (EdgeType, bool) {
	for _, e := range g.forward[u] {
		if e.to == v {
			return e.edgeType, true
		}
	}
	return 0, false
}

// NamedEdge is a directed edge exposed by name rather than vertex
// index, for callers outside the package (rendering, diagnostics) that
// have no business holding onto vertex indices.
type NamedEdge struct {
	From, To string
	Type     EdgeType
}

// Edges returns every edge in the graph, in vertex-insertion order of
// the source and then of the edge itself.
func (g *PluginGraph) Edges() []NamedEdge {
	var out []NamedEdge
	for u := 0; u < len(g.vertices); u++ {
		from := g.vertices[u].Name
		for _, e := range g.forward[u] {
			out = append(out, NamedEdge{From: from, To: g.vertices[e.to].Name, Type: e.edgeType})
		}
	}
	return out
}

// AddEdge inserts u->v of the given type, unless the paths cache
// already proves v reachable from u (in which case the edge would add
// no information and is skipped, not merely deduplicated).
func (g *PluginGraph) AddEdge(u, v int, t EdgeType) {
	if g.paths.IsCached(u, v) {
		return
	}
	g.forward[u] = append(g.forward[u], edgeRef{to: v, edgeType: t})
	g.reverse[v] = append(g.reverse[v], u)
	g.paths.Cache(u, v)
}

// PathExists returns true iff a directed path u -> ... -> v exists.
// It runs a bidirectional BFS, advancing a forward frontier from u and
// a reverse frontier from v one step at a time, and records every
// newly discovered forward descendant and reverse ancestor in the
// paths cache as it goes, so later queries (even negative ones) reuse
// the work.
func (g *PluginGraph) PathExists(u, v int) bool {
	if u == v {
		return true
	}
	if g.paths.IsCached(u, v) {
		return true
	}

	forwardVisited := map[int]bool{u: true}
	reverseVisited := map[int]bool{v: true}
	forwardFrontier := []int{u}
	reverseFrontier := []int{v}

	for len(forwardFrontier) > 0 || len(reverseFrontier) > 0 {
		var nextForward []int
		for _, cur := range forwardFrontier {
			for _, e := range g.forward[cur] {
				next := e.to
				if next == v {
					g.paths.Cache(u, v)
					return true
				}
				if !forwardVisited[next] {
					forwardVisited[next] = true
					g.paths.Cache(u, next)
					nextForward = append(nextForward, next)
				}
				if reverseVisited[next] {
					g.paths.Cache(u, v)
					return true
				}
			}
		}
		forwardFrontier = nextForward

		var nextReverse []int
		for _, cur := range reverseFrontier {
			for _, prev := range g.reverse[cur] {
				if prev == u {
					g.paths.Cache(u, v)
					return true
				}
				if !reverseVisited[prev] {
					reverseVisited[prev] = true
					g.paths.Cache(prev, v)
					nextReverse = append(nextReverse, prev)
				}
				if forwardVisited[prev] {
					g.paths.Cache(u, v)
					return true
				}
			}
		}
		reverseFrontier = nextReverse
	}
	return false
}
