package sorting

import (
	"strings"

	"github.com/loot-go/lootsort/internal/filename"
	"github.com/loot-go/lootsort/internal/game"
	"github.com/loot-go/lootsort/internal/metadata"
	"github.com/loot-go/lootsort/internal/plugin"
)

// PredecessorGroupPlugin names a plugin that must load before the
// plugin it is attached to, because it belongs to a group that
// transitively precedes that plugin's group. ViaUserMetadata is true
// iff every path from the predecessor's group to the owning plugin's
// group required at least one user-added after-group edge.
type PredecessorGroupPlugin struct {
	Name            string
	ViaUserMetadata bool
}

// PluginSortingData is a read-only view combining one parsed plugin
// with its resolved masterlist and user metadata, built once per sort.
// The graph holds these by value; nothing outside the graph retains a
// reference to the one a vertex was built from.
type PluginSortingData struct {
	Name              string
	IsMaster          bool
	IsBlueprintMaster bool
	Masters           []string

	OverrideRecordCount int
	AssetCount          int

	Group               string
	GroupIsUserMetadata bool

	MasterlistLoadAfter    []metadata.File
	UserLoadAfter          []metadata.File
	MasterlistRequirements []metadata.File
	UserRequirements       []metadata.File

	LoadOrderIndex    int
	HasLoadOrderIndex bool

	PredecessorGroupPlugins []PredecessorGroupPlugin

	// Provider is the opaque handle back to the parser, used only to
	// answer overlap queries during AddOverlapEdges.
	Provider plugin.Provider
}

// NewPluginSortingData builds the sorting view for one plugin.
// resolveByName looks up another already-loaded plugin's Provider by
// name, for the Morrowind/OpenMW override-record-count fallback; it
// should return ok=false for a name that isn't loaded.
func NewPluginSortingData(
	p plugin.Provider,
	masterlistMeta, userMeta metadata.PluginMetadata,
	currentLoadOrder []string,
	gameType game.Type,
	resolveByName func(name string) (plugin.Provider, bool),
	fc *filename.Cache,
) PluginSortingData {
	name := p.Name()
	group, groupIsUser := resolveGroup(masterlistMeta, userMeta)
	idx, found := scanLoadOrder(currentLoadOrder, name, fc)

	return PluginSortingData{
		Name:                   name,
		IsMaster:               isMaster(p, name),
		IsBlueprintMaster:      p.IsBlueprintPlugin(),
		Masters:                p.Masters(),
		OverrideRecordCount:    resolveOverrideRecordCount(p, gameType, resolveByName),
		AssetCount:             p.AssetCount(),
		Group:                  group,
		GroupIsUserMetadata:    groupIsUser,
		MasterlistLoadAfter:    masterlistMeta.LoadAfterFiles(),
		UserLoadAfter:          userMeta.LoadAfterFiles(),
		MasterlistRequirements: masterlistMeta.Requirements(),
		UserRequirements:       userMeta.Requirements(),
		LoadOrderIndex:         idx,
		HasLoadOrderIndex:      found,
		Provider:               p,
	}
}

func isMaster(p plugin.Provider, name string) bool {
	if p.IsMaster() {
		return true
	}
	return p.IsLightPlugin() && !strings.HasSuffix(strings.ToLower(name), ".esp")
}

func resolveGroup(masterlistMeta, userMeta metadata.PluginMetadata) (string, bool) {
	if g, ok := userMeta.Group(); ok {
		return g, true
	}
	if g, ok := masterlistMeta.Group(); ok {
		return g, false
	}
	return metadata.DefaultGroupName, false
}

func resolveOverrideRecordCount(p plugin.Provider, gameType game.Type, resolveByName func(string) (plugin.Provider, bool)) int {
	if gameType != game.Morrowind && !gameType.IsOpenMW() {
		return p.OverrideRecordCount()
	}

	masters := make([]plugin.Provider, 0, len(p.Masters()))
	for _, m := range p.Masters() {
		mp, ok := resolveByName(m)
		if !ok {
			return p.RecordAndGroupCount()
		}
		masters = append(masters, mp)
	}
	return p.OverlapSize(masters)
}

func scanLoadOrder(loadOrder []string, name string, fc *filename.Cache) (int, bool) {
	for i, n := range loadOrder {
		if fc.Equal(n, name) {
			return i, true
		}
	}
	return 0, false
}
