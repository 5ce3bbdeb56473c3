package sorting

import "testing"

func TestCheckForCycles_SingleVertexNoEdges(t *testing.T) {
	g := newTestGraph("a.esp")
	if err := g.CheckForCycles(); err != nil {
		t.Fatalf("CheckForCycles() = %v, want nil for a single vertex with no edges", err)
	}
}

func TestCheckForCycles_AcyclicChain(t *testing.T) {
	g := newTestGraph("a.esp", "b.esp", "c.esp", "d.esp")
	g.AddEdge(0, 1, Master)
	g.AddEdge(1, 2, Master)
	g.AddEdge(2, 3, Master)

	if err := g.CheckForCycles(); err != nil {
		t.Fatalf("CheckForCycles() = %v, want nil for an acyclic chain", err)
	}
}

func TestCheckForCycles_DirectCycle(t *testing.T) {
	g := newTestGraph("a.esp", "b.esp")
	g.AddEdge(0, 1, Master)
	g.AddEdge(1, 0, Master)

	err := g.CheckForCycles()
	var cyc *CyclicInteractionError
	if err == nil {
		t.Fatal("CheckForCycles() = nil, want a cycle error")
	}
	if ok := asCyclicInteractionError(err, &cyc); !ok {
		t.Fatalf("CheckForCycles() = %v, want *CyclicInteractionError", err)
	}
}

func TestCheckForCycles_MultiHopCycle(t *testing.T) {
	// a -> b -> c -> a: a three-hop cycle that a same-frame position
	// check (rather than an ancestor-position check) would also miss in
	// the opposite way, reporting it one hop later than the true back
	// edge.
	g := newTestGraph("a.esp", "b.esp", "c.esp")
	g.AddEdge(0, 1, Master)
	g.AddEdge(1, 2, Master)
	g.AddEdge(2, 0, Master)

	err := g.CheckForCycles()
	var cyc *CyclicInteractionError
	if !asCyclicInteractionError(err, &cyc) {
		t.Fatalf("CheckForCycles() = %v, want *CyclicInteractionError", err)
	}
	if len(cyc.Path) != 3 {
		t.Fatalf("cycle path = %+v, want 3 vertices (a, b, c)", cyc.Path)
	}
	names := map[string]bool{}
	for _, v := range cyc.Path {
		names[v.Name] = true
	}
	for _, want := range []string{"a.esp", "b.esp", "c.esp"} {
		if !names[want] {
			t.Errorf("cycle path %+v missing %q", cyc.Path, want)
		}
	}
}

func TestCheckForCycles_DisconnectedComponents(t *testing.T) {
	// One acyclic pair and one cyclic pair: the cycle in the second
	// component must still be found even though the first component's
	// walk has already fully unwound (and deleted its pos entries).
	g := newTestGraph("a.esp", "b.esp", "c.esp", "d.esp")
	g.AddEdge(0, 1, Master)
	g.AddEdge(2, 3, Master)
	g.AddEdge(3, 2, Master)

	var cyc *CyclicInteractionError
	if !asCyclicInteractionError(g.CheckForCycles(), &cyc) {
		t.Fatal("CheckForCycles() did not report the second component's cycle")
	}
}

func asCyclicInteractionError(err error, target **CyclicInteractionError) bool {
	cyc, ok := err.(*CyclicInteractionError)
	if !ok {
		return false
	}
	*target = cyc
	return true
}
