package graphview

import (
	"strings"
	"testing"

	"github.com/loot-go/lootsort/internal/sorting"
)

func TestRender_Empty(t *testing.T) {
	got := Render(nil)
	if !strings.Contains(got, "no edges") {
		t.Fatalf("Render(nil) = %q, want a no-edges placeholder", got)
	}
}

func TestRender_GroupsBySource(t *testing.T) {
	edges := []sorting.NamedEdge{
		{From: "b.esp", To: "c.esp", Type: sorting.TieBreak},
		{From: "a.esp", To: "b.esp", Type: sorting.Master},
		{From: "a.esp", To: "c.esp", Type: sorting.Overlap},
	}
	got := Render(edges)

	aIdx := strings.Index(got, "a.esp")
	bIdx := strings.Index(got, "b.esp")
	if aIdx < 0 || bIdx < 0 || aIdx > bIdx {
		t.Fatalf("expected a.esp block before b.esp block, got:\n%s", got)
	}
	if !strings.Contains(got, "Master") || !strings.Contains(got, "Overlap") || !strings.Contains(got, "Tie Break") {
		t.Fatalf("expected all edge type labels present, got:\n%s", got)
	}
}

func TestRenderFor_FiltersToPlugin(t *testing.T) {
	edges := []sorting.NamedEdge{
		{From: "a.esp", To: "b.esp", Type: sorting.Master},
		{From: "c.esp", To: "d.esp", Type: sorting.TieBreak},
	}
	got := RenderFor(edges, "a.esp")
	if !strings.Contains(got, "a.esp") || !strings.Contains(got, "b.esp") {
		t.Fatalf("expected a.esp and b.esp in filtered render, got:\n%s", got)
	}
	if strings.Contains(got, "c.esp") || strings.Contains(got, "d.esp") {
		t.Fatalf("did not expect unrelated plugins in filtered render, got:\n%s", got)
	}
}

func TestRenderFor_NoMatches(t *testing.T) {
	edges := []sorting.NamedEdge{{From: "a.esp", To: "b.esp", Type: sorting.Master}}
	got := RenderFor(edges, "z.esp")
	if !strings.Contains(got, "no edges touching z.esp") {
		t.Fatalf("Render = %q, want a no-edges-touching placeholder", got)
	}
}
