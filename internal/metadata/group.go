package metadata

// DefaultGroupName is the implicit group assigned to a plugin that has
// no explicit group metadata from either the masterlist or the user.
const DefaultGroupName = "default"

// AfterGroup names a group that must load before the group that lists
// it, and records whether that edge came from user metadata (as
// opposed to the masterlist).
type AfterGroup struct {
	Name       string
	IsUserEdge bool
}

// Group is a named bucket of plugins. Groups form a DAG: an after-group
// is one that must load before this group.
type Group struct {
	Name        string
	AfterGroups []AfterGroup
}

// NewDefaultGroup returns the implicit "default" group with no
// after-groups.
func NewDefaultGroup() Group {
	return Group{Name: DefaultGroupName}
}

// mergeGroupLists unions two Group lists using the same per-group after-group
// union as MergeGroups applies across the whole list.
func mergeGroupLists(masterlist, user []Group) []Group {
	byName := make(map[string]Group, len(masterlist)+len(user))
	order := make([]string, 0, len(masterlist)+len(user))

	add := func(g Group, fromUser bool) {
		existing, ok := byName[g.Name]
		if !ok {
			order = append(order, g.Name)
			afterGroups := make([]AfterGroup, len(g.AfterGroups))
			for i, ag := range g.AfterGroups {
				afterGroups[i] = AfterGroup{Name: ag.Name, IsUserEdge: fromUser}
			}
			byName[g.Name] = Group{Name: g.Name, AfterGroups: afterGroups}
			return
		}

		for _, ag := range g.AfterGroups {
			if !containsAfterGroup(existing.AfterGroups, ag.Name) {
				existing.AfterGroups = append(existing.AfterGroups, AfterGroup{
					Name:       ag.Name,
					IsUserEdge: fromUser,
				})
			}
		}
		byName[g.Name] = existing
	}

	for _, g := range masterlist {
		add(g, false)
	}
	for _, g := range user {
		add(g, true)
	}

	merged := make([]Group, 0, len(order))
	for _, name := range order {
		merged = append(merged, byName[name])
	}
	return merged
}

func containsAfterGroup(groups []AfterGroup, name string) bool {
	for _, g := range groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// MergeGroups merges a masterlist group list with a user group list,
// per-group: after-groups are unioned by name, each new edge tagged
// with whether it came from the user list. A group appearing in both
// lists keeps its masterlist after-groups and adds any user after-groups
// not already present.
func MergeGroups(masterlist, user []Group) []Group {
	return mergeGroupLists(masterlist, user)
}
