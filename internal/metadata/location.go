package metadata

// Location is a URL where a plugin can be found, with an optional
// human-readable name for the link.
type Location struct {
	URL  string
	Name string
}

// Equal reports whether two Location values are identical.
func (l Location) Equal(other Location) bool {
	return l.URL == other.URL && l.Name == other.Name
}

func mergeLocations(base, other []Location) []Location {
	merged := make([]Location, len(base), len(base)+len(other))
	copy(merged, base)
	for _, l := range other {
		found := false
		for _, existing := range merged {
			if existing.Equal(l) {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, l)
		}
	}
	return merged
}
