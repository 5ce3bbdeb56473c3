package sorting

import (
	"fmt"
	"strings"
)

// Vertex is one step in a cyclic-interaction path: a plugin name and
// the type of the edge that arrives at it from the previous step. The
// first entry's EdgeType is the edge that closes the cycle, arriving
// from the last entry; Error does not print it.
type Vertex struct {
	Name     string
	EdgeType EdgeType
}

// CyclicInteractionError reports a cycle found while adding edges to a
// PluginGraph, or synthesised by cross-partition validation. Path lists
// the vertices in cycle order, closing back on the first entry.
type CyclicInteractionError struct {
	Path []Vertex
}

func (e *CyclicInteractionError) Error() string {
	parts := make([]string, len(e.Path))
	for i, v := range e.Path {
		if i == 0 {
			parts[i] = v.Name
			continue
		}
		parts[i] = fmt.Sprintf("%s (%s)", v.Name, v.EdgeType)
	}
	return fmt.Sprintf("cyclic interaction detected: %s", strings.Join(parts, " -> "))
}

// UndefinedGroupError reports that a plugin or group references a
// group name absent from the merged masterlist+user group list.
type UndefinedGroupError struct {
	Group string
}

func (e *UndefinedGroupError) Error() string {
	return fmt.Sprintf("cannot find group %q", e.Group)
}

// InvalidArgumentError reports a caller error, such as comparing a
// plugin against something that isn't one.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}
