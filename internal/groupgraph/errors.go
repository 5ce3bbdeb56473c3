package groupgraph

import (
	"fmt"
	"strings"
)

// UndefinedGroupError reports that a group name referenced as an
// after-group (or looked up directly) is not present in the merged
// group list.
type UndefinedGroupError struct {
	Group string
}

func (e *UndefinedGroupError) Error() string {
	return fmt.Sprintf("cannot find group %q", e.Group)
}

// CycleError reports a cycle found while walking the group graph's
// after-group edges. Path lists the group names in cycle order,
// starting from the group where the back-edge was found.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic interaction detected between groups: %s",
		strings.Join(e.Path, " -> "))
}
