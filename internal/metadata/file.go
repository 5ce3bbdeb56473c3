// Package metadata holds the value objects the sorting core reads
// from the masterlist and userlist: files, groups, tags, messages,
// cleaning data, locations, and the per-plugin metadata that bundles
// them together with merge and name-matching semantics.
package metadata

// File names another plugin in a load-after/requirement/incompatibility
// relationship, optionally under a different display name and gated by
// a condition string. The condition is opaque here: evaluating it is
// the condition evaluator's job (an external collaborator), not the
// sorting core's.
type File struct {
	Name      string
	Display   string
	Condition string
}

// NewFile creates a File that names the given plugin with no display
// override and no condition.
func NewFile(name string) File {
	return File{Name: name}
}

// Equal reports whether two File values are identical in every field.
// Merge uses this to deduplicate exact-equal entries.
func (f File) Equal(other File) bool {
	return f.Name == other.Name &&
		f.Display == other.Display &&
		f.Condition == other.Condition
}

// mergeFiles unions two ordered File lists, preserving the order of
// base then appending any of other's entries that aren't exactly equal
// to one already present.
func mergeFiles(base, other []File) []File {
	merged := make([]File, len(base), len(base)+len(other))
	copy(merged, base)

	for _, f := range other {
		if !containsFile(merged, f) {
			merged = append(merged, f)
		}
	}
	return merged
}

func containsFile(files []File, f File) bool {
	for _, existing := range files {
		if existing.Equal(f) {
			return true
		}
	}
	return false
}
