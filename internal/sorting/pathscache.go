package sorting

// PathsCache memoises "is v reachable from u" for one sort's plugin
// graph. It is write-only and monotone: entries are never removed, and
// it never records a false negative, only a possibly-incomplete set of
// true positives. PluginGraph uses it to short-circuit PathExists and
// to skip inserting an edge that the cache already proves redundant.
type PathsCache struct {
	reachable map[int]map[int]struct{}
}

// NewPathsCache creates an empty cache.
func NewPathsCache() *PathsCache {
	return &PathsCache{reachable: make(map[int]map[int]struct{})}
}

// IsCached reports whether v is already known reachable from u.
func (c *PathsCache) IsCached(u, v int) bool {
	set, ok := c.reachable[u]
	if !ok {
		return false
	}
	_, ok = set[v]
	return ok
}

// Cache records that v is reachable from u.
func (c *PathsCache) Cache(u, v int) {
	set, ok := c.reachable[u]
	if !ok {
		set = make(map[int]struct{})
		c.reachable[u] = set
	}
	set[v] = struct{}{}
}
