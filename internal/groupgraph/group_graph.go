// Package groupgraph implements the group DAG: it merges masterlist
// and user group lists, validates every after-group reference, checks
// the result for cycles, and answers "which groups must this group's
// plugins load after" queries with a flag recording whether user
// metadata was load-bearing for that answer.
package groupgraph

import (
	"sort"

	"github.com/loot-go/lootsort/internal/metadata"
)

// Predecessor is one entry in a group's transitive predecessor set: a
// group whose plugins must load before the queried group's plugins,
// plus whether every path to it required at least one user-metadata
// after-group edge.
type Predecessor struct {
	Name            string
	ViaUserMetadata bool
}

// Graph is the merged, validated group DAG.
type Graph struct {
	groups map[string]metadata.Group
	order  []string
}

// New merges masterlist and user group lists via metadata.MergeGroups,
// validates that every after-group name resolves to a defined group,
// and checks the result for cycles.
func New(masterlist, user []metadata.Group) (*Graph, error) {
	merged := metadata.MergeGroups(masterlist, user)

	g := &Graph{groups: make(map[string]metadata.Group, len(merged))}
	for _, group := range merged {
		g.groups[group.Name] = group
		g.order = append(g.order, group.Name)
	}
	sort.Strings(g.order)

	for _, group := range merged {
		for _, after := range group.AfterGroups {
			if _, ok := g.groups[after.Name]; !ok {
				return nil, &UndefinedGroupError{Group: after.Name}
			}
		}
	}

	if err := g.checkCycles(); err != nil {
		return nil, err
	}

	return g, nil
}

// Names returns the group names in the graph, sorted for determinism.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Has reports whether name is a defined group.
func (g *Graph) Has(name string) bool {
	_, ok := g.groups[name]
	return ok
}

// PredecessorsOf returns the transitive set of groups that must load
// before target, found by walking target's after-group edges forward
// (an after-group of a group must load before that group, so walking
// after-groups moves toward earlier-loading groups). A predecessor's
// ViaUserMetadata flag is true iff no path from target to it exists
// using only masterlist-sourced after-group edges — i.e. every such
// path relies on at least one user-added edge.
func (g *Graph) PredecessorsOf(target string) ([]Predecessor, error) {
	if !g.Has(target) {
		return nil, &UndefinedGroupError{Group: target}
	}

	all := g.reachableFrom(target, false)
	viaMasterlistOnly := g.reachableFrom(target, true)

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Predecessor, 0, len(names))
	for _, name := range names {
		_, reachableWithoutUserEdges := viaMasterlistOnly[name]
		result = append(result, Predecessor{
			Name:            name,
			ViaUserMetadata: !reachableWithoutUserEdges,
		})
	}
	return result, nil
}

// GroupsBetween returns the groups lying strictly between from and to
// on every after-group path from to back toward from, excluding both
// endpoints. It assumes to transitively depends on from; if it
// doesn't, the result is empty. Used to scope a group-edge cycle
// resolution to only the groups actually implicated in the cycle,
// rather than every ancestor of either endpoint.
func (g *Graph) GroupsBetween(from, to string) map[string]bool {
	result := g.groupsOnPathTo(to, from, map[string]bool{})
	delete(result, to)
	return result
}

// groupsOnPathTo mirrors the accumulate-then-merge recursion needed to
// find every group on some after-group path from name to target:
// visited is the set of groups already passed through (not including
// name), and the result — once name reaches target — is visited plus
// every group between name and target on the path taken to get there.
// Paths that never reach target contribute nothing.
func (g *Graph) groupsOnPathTo(name, target string, visited map[string]bool) map[string]bool {
	if name == target {
		return visited
	}
	after := g.groups[name].AfterGroups
	if len(after) == 0 {
		return nil
	}

	next := make(map[string]bool, len(visited)+1)
	for v := range visited {
		next[v] = true
	}
	next[name] = true

	merged := make(map[string]bool)
	for _, a := range after {
		for v := range g.groupsOnPathTo(a.Name, target, next) {
			merged[v] = true
		}
	}
	if len(merged) == 0 {
		return nil
	}
	for v := range next {
		merged[v] = true
	}
	return merged
}

// reachableFrom walks after-group edges starting at start, excluding
// start itself. When masterlistOnly is true, user-sourced after-group
// edges are not traversed.
func (g *Graph) reachableFrom(start string, masterlistOnly bool) map[string]struct{} {
	visited := make(map[string]struct{})
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, after := range g.groups[cur].AfterGroups {
			if masterlistOnly && after.IsUserEdge {
				continue
			}
			if _, seen := visited[after.Name]; seen {
				continue
			}
			visited[after.Name] = struct{}{}
			queue = append(queue, after.Name)
		}
	}
	return visited
}
