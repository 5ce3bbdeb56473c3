package metadata

// PluginCleaningData records a known-dirty or known-clean CRC for a
// plugin, along with what cleaning it needs (if any) and who verified
// it.
type PluginCleaningData struct {
	CRC          uint32
	ITMCount     int
	DeletedRefs  int
	DeletedNavs  int
	CleaningUtil string
	Info         []Message
}

// Equal reports whether two PluginCleaningData values are identical,
// including their info messages in order.
func (c PluginCleaningData) Equal(other PluginCleaningData) bool {
	if c.CRC != other.CRC || c.ITMCount != other.ITMCount ||
		c.DeletedRefs != other.DeletedRefs || c.DeletedNavs != other.DeletedNavs ||
		c.CleaningUtil != other.CleaningUtil || len(c.Info) != len(other.Info) {
		return false
	}
	for i := range c.Info {
		if !c.Info[i].Equal(other.Info[i]) {
			return false
		}
	}
	return true
}

func mergeCleaningData(base, other []PluginCleaningData) []PluginCleaningData {
	merged := make([]PluginCleaningData, len(base), len(base)+len(other))
	copy(merged, base)
	for _, c := range other {
		found := false
		for _, existing := range merged {
			if existing.Equal(c) {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, c)
		}
	}
	return merged
}
