package sorting

import (
	"github.com/loot-go/lootsort/internal/game"
	"github.com/loot-go/lootsort/internal/groupgraph"
	"github.com/loot-go/lootsort/internal/logging"
	"github.com/loot-go/lootsort/internal/metadata"
)

// AddSpecificEdges adds MasterFlag, Master, and the four curated
// file-reference edge types. MasterFlag runs pairwise over every pair
// of vertices; the rest run per-vertex over that vertex's own master
// and metadata-file lists.
func (g *PluginGraph) AddSpecificEdges() {
	n := g.Len()
	for u := 0; u < n; u++ {
		um := g.vertices[u].IsMaster
		for v := u + 1; v < n; v++ {
			vm := g.vertices[v].IsMaster
			if um == vm {
				continue
			}
			if um {
				g.AddEdge(u, v, MasterFlag)
			} else {
				g.AddEdge(v, u, MasterFlag)
			}
		}
	}

	for v := 0; v < n; v++ {
		data := g.vertices[v]

		for _, m := range data.Masters {
			if u, ok := g.VertexByName(m); ok {
				g.AddEdge(u, v, Master)
			}
		}

		addFileEdges := func(files []metadata.File, t EdgeType) {
			for _, f := range files {
				if u, ok := g.VertexByName(f.Name); ok {
					g.AddEdge(u, v, t)
				}
			}
		}
		addFileEdges(data.MasterlistRequirements, MasterlistRequirement)
		addFileEdges(data.UserRequirements, UserRequirement)
		addFileEdges(data.MasterlistLoadAfter, MasterlistLoadAfter)
		addFileEdges(data.UserLoadAfter, UserLoadAfter)
	}
}

// AddHardcodedPluginEdges adds a Hardcoded edge from every present
// hardcoded (implicitly-active) plugin to every vertex not itself
// hardcoded. Update.esm is skipped under Skyrim, which assigns it no
// hardcoded position.
func (g *PluginGraph) AddHardcodedPluginEdges(hardcoded []string, gameType game.Type) {
	isHardcoded := make(map[string]bool, len(hardcoded))
	for _, h := range hardcoded {
		isHardcoded[g.fc.Normalize(h)] = true
	}

	for _, h := range hardcoded {
		if gameType == game.Skyrim && g.fc.Equal(h, "Update.esm") {
			continue
		}
		p, ok := g.VertexByName(h)
		if !ok {
			continue
		}
		for v := 0; v < g.Len(); v++ {
			if isHardcoded[g.fc.Normalize(g.vertices[v].Name)] {
				continue
			}
			g.AddEdge(p, v, Hardcoded)
		}
	}
}

// AddGroupEdges adds edges derived from the group graph's predecessor
// expansion. For each vertex v and each of its predecessor-group
// plugins pred: if adding pred->v would close a cycle, the edge is
// either skipped (master-flag already dominates, or it is not the case
// that exactly one endpoint is in the default group) or resolved by
// marking the default-group endpoint's group edges ignored against the
// groups lying strictly between the two endpoints' groups. Surviving candidates are collected first and emitted only
// if neither endpoint ends up suppressed, so an ignore decision made
// late in the scan still applies to candidates recorded earlier.
func (g *PluginGraph) AddGroupEdges(groups *groupgraph.Graph) {
	type candidate struct {
		pred, v int
	}
	var candidates []candidate

	// ignore[pluginName] is the set of group names that pluginName's
	// own group-edge participation should be ignored against.
	ignore := make(map[string]map[string]bool)
	markIgnored := func(plugin, group string) {
		set, ok := ignore[plugin]
		if !ok {
			set = make(map[string]bool)
			ignore[plugin] = set
		}
		set[group] = true
	}

	for v := 0; v < g.Len(); v++ {
		vData := g.vertices[v]
		for _, p := range vData.PredecessorGroupPlugins {
			predIdx, ok := g.VertexByName(p.Name)
			if !ok {
				continue
			}
			predData := g.vertices[predIdx]

			if g.PathExists(v, predIdx) {
				if !predData.IsMaster && vData.IsMaster {
					continue
				}
				predIsDefault := predData.Group == metadata.DefaultGroupName
				vIsDefault := vData.Group == metadata.DefaultGroupName
				switch {
				case predIsDefault == vIsDefault:
					// neither default, or both default: no
					// resolution rule applies, skip silently.
					continue
				case predIsDefault:
					logging.Logger.Debug("ignoring group edge to break cycle", "plugin", predData.Name, "group", vData.Group)
					for group := range groups.GroupsBetween(predData.Group, vData.Group) {
						markIgnored(predData.Name, group)
					}
				default:
					logging.Logger.Debug("ignoring group edge to break cycle", "plugin", vData.Name, "group", predData.Group)
					for group := range groups.GroupsBetween(predData.Group, vData.Group) {
						markIgnored(vData.Name, group)
					}
				}
				continue
			}
			candidates = append(candidates, candidate{pred: predIdx, v: v})
		}
	}

	for _, c := range candidates {
		predData := g.vertices[c.pred]
		vData := g.vertices[c.v]
		if ignore[vData.Name][predData.Group] || ignore[predData.Name][vData.Group] {
			continue
		}
		g.AddEdge(c.pred, c.v, Group)
	}
}

// AddOverlapEdges orders plugins whose override records or assets
// overlap, the one with more of whichever overlapped loading first.
func (g *PluginGraph) AddOverlapEdges() {
	n := g.Len()
	for u := 0; u < n; u++ {
		uData := g.vertices[u]
		if uData.OverrideRecordCount == 0 && uData.AssetCount == 0 {
			continue
		}
		for v := u + 1; v < n; v++ {
			if g.EdgeExists(u, v) || g.EdgeExists(v, u) {
				continue
			}
			vData := g.vertices[v]

			first, second, resolved := -1, -1, false
			switch {
			case uData.OverrideRecordCount != vData.OverrideRecordCount && uData.Provider.RecordsOverlap(vData.Provider):
				resolved = true
				if uData.OverrideRecordCount > vData.OverrideRecordCount {
					first, second = u, v
				} else {
					first, second = v, u
				}
			case uData.AssetCount != vData.AssetCount && uData.Provider.AssetsOverlap(vData.Provider):
				resolved = true
				if uData.AssetCount > vData.AssetCount {
					first, second = u, v
				} else {
					first, second = v, u
				}
			}
			if !resolved {
				continue
			}
			if !g.PathExists(second, first) {
				g.AddEdge(first, second, Overlap)
			}
		}
	}
}

// AddTieBreakEdges forces a Hamiltonian path by adding a last-resort
// edge between every pair not already ordered some other way.
func (g *PluginGraph) AddTieBreakEdges() {
	n := g.Len()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			first, second := g.comparePlugins(u, v)
			if !g.PathExists(second, first) {
				g.AddEdge(first, second, TieBreak)
			}
		}
	}
}

// comparePlugins orders two plugins: one with a current load-order
// index precedes one without; between two with indices, the lower
// index goes first; between two without, basenames (name minus the
// last four characters, the length of a ".esp"/".esm"/".esl" extension)
// are compared, with the full name as a final tie-break on extension.
func (g *PluginGraph) comparePlugins(u, v int) (first, second int) {
	a, b := g.vertices[u], g.vertices[v]

	switch {
	case a.HasLoadOrderIndex && !b.HasLoadOrderIndex:
		return u, v
	case !a.HasLoadOrderIndex && b.HasLoadOrderIndex:
		return v, u
	case a.HasLoadOrderIndex && b.HasLoadOrderIndex:
		if a.LoadOrderIndex <= b.LoadOrderIndex {
			return u, v
		}
		return v, u
	}

	if c := g.fc.Compare(basename(a.Name), basename(b.Name)); c != 0 {
		if c < 0 {
			return u, v
		}
		return v, u
	}
	if g.fc.Compare(a.Name, b.Name) <= 0 {
		return u, v
	}
	return v, u
}

// basename strips the last four characters of name, the length of
// every extension this format uses (".esp", ".esm", ".esl"), each
// including the leading dot.
func basename(name string) string {
	if len(name) <= 4 {
		return name
	}
	return name[:len(name)-4]
}
