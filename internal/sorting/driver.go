package sorting

import (
	"sort"

	"github.com/loot-go/lootsort/internal/filename"
	"github.com/loot-go/lootsort/internal/game"
	"github.com/loot-go/lootsort/internal/groupgraph"
	"github.com/loot-go/lootsort/internal/logging"
	"github.com/loot-go/lootsort/internal/metadata"
	"github.com/loot-go/lootsort/internal/plugin"
)

// Input bundles everything the driver needs to sort one set of loaded
// plugins: the providers themselves, their resolved masterlist and
// user metadata (a name with none should map to metadata.New(name),
// whose every field is empty), the current load order, the game type,
// the hardcoded plugin list, and the merged group lists.
type Input struct {
	Plugins          []plugin.Provider
	MasterlistMeta   []metadata.PluginMetadata
	UserMeta         []metadata.PluginMetadata
	CurrentLoadOrder []string
	GameType         game.Type
	HardcodedPlugins []string
	MasterlistGroups []metadata.Group
	UserGroups       []metadata.Group
}

// Result is the outcome of one successful sort.
type Result struct {
	Order []string
	// Edges holds every edge from both partitions, for diagnostics and
	// graph rendering; it plays no part in the sort itself.
	Edges []NamedEdge
	// NonHamiltonianGap, if non-nil, names the first consecutive pair
	// in Order with no direct edge between them: a logged anomaly, not
	// a failure.
	NonHamiltonianGap *[2]string
}

// Sort builds PluginSortingData for every input plugin, partitions
// them into masters and non-masters, validates cross-partition
// constraints, builds the group graph, runs the edge-generation phases
// on each partition separately, and concatenates the two resulting
// orders (masters first).
func Sort(in Input) (Result, error) {
	fc := filename.NewCache()

	providerByName := make(map[string]plugin.Provider, len(in.Plugins))
	for _, p := range in.Plugins {
		providerByName[fc.Normalize(p.Name())] = p
	}
	resolveByName := func(name string) (plugin.Provider, bool) {
		p, ok := providerByName[fc.Normalize(name)]
		return p, ok
	}

	sortingData := make([]PluginSortingData, 0, len(in.Plugins))
	for _, p := range in.Plugins {
		ml := lookupMetadata(p.Name(), in.MasterlistMeta)
		ul := lookupMetadata(p.Name(), in.UserMeta)
		sortingData = append(sortingData, NewPluginSortingData(p, ml, ul, in.CurrentLoadOrder, in.GameType, resolveByName, fc))
	}

	sort.SliceStable(sortingData, func(i, j int) bool {
		return fc.Compare(sortingData[i].Name, sortingData[j].Name) < 0
	})

	if err := validateCrossPartitionEdges(sortingData, in.HardcodedPlugins, fc); err != nil {
		return Result{}, err
	}

	groupPlugins, groupAncestry, groups, err := buildGroupMaps(in.MasterlistGroups, in.UserGroups, sortingData)
	if err != nil {
		return Result{}, err
	}
	assignPredecessorGroupPlugins(sortingData, groupPlugins, groupAncestry)

	var masters, nonMasters []PluginSortingData
	for _, d := range sortingData {
		if d.IsMaster {
			masters = append(masters, d)
		} else {
			nonMasters = append(nonMasters, d)
		}
	}

	mastersOrder, mastersEdges, mastersGap, err := runPartition(masters, in.HardcodedPlugins, in.GameType, groups, fc)
	if err != nil {
		return Result{}, err
	}
	nonMastersOrder, nonMastersEdges, nonMastersGap, err := runPartition(nonMasters, in.HardcodedPlugins, in.GameType, groups, fc)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Order: append(mastersOrder, nonMastersOrder...),
		Edges: append(mastersEdges, nonMastersEdges...),
	}
	switch {
	case mastersGap != nil:
		result.NonHamiltonianGap = mastersGap
	case nonMastersGap != nil:
		result.NonHamiltonianGap = nonMastersGap
	}
	if result.NonHamiltonianGap != nil {
		gap := result.NonHamiltonianGap
		logging.Logger.Error("sorted order is not a Hamiltonian path", "first", gap[0], "second", gap[1])
	}
	return result, nil
}

func lookupMetadata(name string, table []metadata.PluginMetadata) metadata.PluginMetadata {
	for _, m := range table {
		if m.NameMatches(name) {
			return m
		}
	}
	return metadata.New(name)
}

func runPartition(data []PluginSortingData, hardcoded []string, gameType game.Type, groups *groupgraph.Graph, fc *filename.Cache) ([]string, []NamedEdge, *[2]string, error) {
	g := NewPluginGraph(fc)
	for _, d := range data {
		g.AddVertex(d)
	}

	g.AddSpecificEdges()
	g.AddHardcodedPluginEdges(hardcoded, gameType)
	g.AddGroupEdges(groups)

	if err := g.CheckForCycles(); err != nil {
		return nil, nil, nil, err
	}

	g.AddOverlapEdges()
	g.AddTieBreakEdges()

	if err := g.CheckForCycles(); err != nil {
		return nil, nil, nil, err
	}

	order := g.TopologicalSort()
	names := make([]string, len(order))
	for i, idx := range order {
		names[i] = g.Vertex(idx).Name
	}

	var gap *[2]string
	if pair, ok := g.IsHamiltonianPath(order); !ok {
		gap = &[2]string{g.Vertex(pair[0]).Name, g.Vertex(pair[1]).Name}
	}

	return names, g.Edges(), gap, nil
}

// buildGroupMaps builds the group-name -> member-plugin-names map and
// the group-name -> transitive-predecessor-groups map (each carrying
// the via-user-metadata flag) from the merged masterlist+user group
// lists and the resolved group each plugin belongs to.
func buildGroupMaps(masterlistGroups, userGroups []metadata.Group, data []PluginSortingData) (map[string][]string, map[string][]groupgraph.Predecessor, *groupgraph.Graph, error) {
	gg, err := groupgraph.New(masterlistGroups, userGroups)
	if err != nil {
		return nil, nil, nil, convertGroupError(err)
	}

	groupPlugins := make(map[string][]string)
	groupsSeen := map[string]bool{metadata.DefaultGroupName: true}
	for _, d := range data {
		groupPlugins[d.Group] = append(groupPlugins[d.Group], d.Name)
		groupsSeen[d.Group] = true
	}
	for _, name := range gg.Names() {
		groupsSeen[name] = true
	}

	groupAncestry := make(map[string][]groupgraph.Predecessor, len(groupsSeen))
	for group := range groupsSeen {
		if !gg.Has(group) {
			if group == metadata.DefaultGroupName {
				continue
			}
			return nil, nil, nil, &UndefinedGroupError{Group: group}
		}
		preds, err := gg.PredecessorsOf(group)
		if err != nil {
			return nil, nil, nil, convertGroupError(err)
		}
		groupAncestry[group] = preds
	}

	return groupPlugins, groupAncestry, gg, nil
}

// assignPredecessorGroupPlugins populates each plugin's
// PredecessorGroupPlugins by expanding its resolved group's transitive
// predecessor groups into the member plugins of those groups, sorted
// by name for determinism.
func assignPredecessorGroupPlugins(data []PluginSortingData, groupPlugins map[string][]string, groupAncestry map[string][]groupgraph.Predecessor) {
	for i := range data {
		preds := groupAncestry[data[i].Group]

		var result []PredecessorGroupPlugin
		for _, pred := range preds {
			for _, name := range groupPlugins[pred.Name] {
				result = append(result, PredecessorGroupPlugin{Name: name, ViaUserMetadata: pred.ViaUserMetadata})
			}
		}
		sort.Slice(result, func(a, b int) bool { return result[a].Name < result[b].Name })
		data[i].PredecessorGroupPlugins = result
	}
}

func convertGroupError(err error) error {
	if ug, ok := err.(*groupgraph.UndefinedGroupError); ok {
		return &UndefinedGroupError{Group: ug.Group}
	}
	if cyc, ok := err.(*groupgraph.CycleError); ok {
		path := make([]Vertex, len(cyc.Path))
		for i, name := range cyc.Path {
			path[i] = Vertex{Name: name, EdgeType: Group}
		}
		return &CyclicInteractionError{Path: path}
	}
	return err
}

// validateCrossPartitionEdges fails the sort if any master vertex has
// a specific or hardcoded edge pointing at a non-master name, or if
// there is any master at all and any hardcoded plugin is a
// non-master. The reported path is the non-master followed by the
// master: the master carries the violated edge type, and the
// non-master carries MasterFlag, the edge that closes the cycle.
func validateCrossPartitionEdges(data []PluginSortingData, hardcoded []string, fc *filename.Cache) error {
	isMasterByName := make(map[string]bool, len(data))
	existsByName := make(map[string]bool, len(data))
	for _, d := range data {
		n := fc.Normalize(d.Name)
		isMasterByName[n] = d.IsMaster
		existsByName[n] = true
	}

	hasMaster := false
	firstMaster := ""
	for _, d := range data {
		if d.IsMaster {
			hasMaster = true
			firstMaster = d.Name
			break
		}
	}

	crossesPartition := func(refName string) bool {
		n := fc.Normalize(refName)
		return existsByName[n] && !isMasterByName[n]
	}

	for _, d := range data {
		if !d.IsMaster {
			continue
		}
		check := func(refs []metadata.File, edgeType EdgeType) error {
			for _, f := range refs {
				if crossesPartition(f.Name) {
					return &CyclicInteractionError{Path: []Vertex{
						{Name: f.Name, EdgeType: MasterFlag},
						{Name: d.Name, EdgeType: edgeType},
					}}
				}
			}
			return nil
		}
		for _, m := range d.Masters {
			if crossesPartition(m) {
				return &CyclicInteractionError{Path: []Vertex{
					{Name: m, EdgeType: MasterFlag},
					{Name: d.Name, EdgeType: Master},
				}}
			}
		}
		if err := check(d.MasterlistRequirements, MasterlistRequirement); err != nil {
			return err
		}
		if err := check(d.UserRequirements, UserRequirement); err != nil {
			return err
		}
		if err := check(d.MasterlistLoadAfter, MasterlistLoadAfter); err != nil {
			return err
		}
		if err := check(d.UserLoadAfter, UserLoadAfter); err != nil {
			return err
		}
	}

	if hasMaster {
		for _, h := range hardcoded {
			if crossesPartition(h) {
				return &CyclicInteractionError{Path: []Vertex{
					{Name: h, EdgeType: MasterFlag},
					{Name: firstMaster, EdgeType: Hardcoded},
				}}
			}
		}
	}

	return nil
}
