package sorting

import (
	"reflect"
	"testing"

	"github.com/loot-go/lootsort/internal/filename"
)

func newTestGraph(names ...string) *PluginGraph {
	g := NewPluginGraph(filename.NewCache())
	for _, n := range names {
		g.AddVertex(PluginSortingData{Name: n})
	}
	return g
}

func TestAddVertex_VertexByName(t *testing.T) {
	g := newTestGraph("Skyrim.esm", "Dawnguard.esm")

	idx, ok := g.VertexByName("dawnguard.esm")
	if !ok || idx != 1 {
		t.Fatalf("VertexByName(case-folded) = %d, %v, want 1, true", idx, ok)
	}
	if _, ok := g.VertexByName("missing.esp"); ok {
		t.Fatalf("VertexByName(missing) = ok, want not found")
	}
}

func TestAddEdge_SkipsWhenAlreadyReachable(t *testing.T) {
	g := newTestGraph("a.esp", "b.esp", "c.esp")
	g.AddEdge(0, 1, Master)
	g.AddEdge(1, 2, Master)

	// Priming the paths cache via PathExists is what makes the
	// transitive 0->2 edge below redundant; AddEdge only consults
	// entries already in the cache, it doesn't compute reachability
	// itself.
	if !g.PathExists(0, 2) {
		t.Fatal("PathExists(0, 2) = false, want true")
	}
	g.AddEdge(0, 2, Master)

	if len(g.Edges()) != 2 {
		t.Fatalf("Edges() = %+v, want only the first two direct edges", g.Edges())
	}
}

func TestPathExists(t *testing.T) {
	g := newTestGraph("a.esp", "b.esp", "c.esp", "d.esp")
	g.AddEdge(0, 1, Master)
	g.AddEdge(1, 2, Master)

	if !g.PathExists(0, 2) {
		t.Error("PathExists(0, 2) = false, want true (transitive)")
	}
	if !g.PathExists(0, 0) {
		t.Error("PathExists(0, 0) = false, want true (trivial)")
	}
	if g.PathExists(2, 0) {
		t.Error("PathExists(2, 0) = true, want false")
	}
	if g.PathExists(0, 3) {
		t.Error("PathExists(0, 3) = true, want false (unconnected)")
	}
}

func TestEdges_NamedAndOrdered(t *testing.T) {
	g := newTestGraph("a.esp", "b.esp", "c.esp")
	g.AddEdge(0, 1, Master)
	g.AddEdge(0, 2, Overlap)

	got := g.Edges()
	want := []NamedEdge{
		{From: "a.esp", To: "b.esp", Type: Master},
		{From: "a.esp", To: "c.esp", Type: Overlap},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Edges() = %+v, want %+v", got, want)
	}
}
