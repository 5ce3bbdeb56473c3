// Package filename provides a locale-invariant, case-insensitive total
// order over plugin filenames, plus a per-sort memoisation cache.
//
// Bethesda-style plugin names are compared ignoring case the same way
// across every platform a sort might run on, rather than deferring to
// the current process locale the way sorting a generic string would.
package filename

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Normalize returns a locale-invariant case-folded form of name,
// suitable for use as a map key or set element. Two filenames compare
// equal under Compare iff their Normalize forms are identical.
func Normalize(name string) string {
	return folder.String(name)
}

// Compare returns -1, 0, or 1 according to whether a sorts before,
// the same as, or after b, comparing case-insensitively using a fixed
// Unicode case fold rather than the process locale.
func Compare(a, b string) int {
	na, nb := Normalize(a), Normalize(b)
	return strings.Compare(na, nb)
}

// Equal reports whether a and b name the same plugin, ignoring case.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Cache memoises Normalize for the duration of one sort. It is not
// safe for concurrent use; one sort shares a single Cache between its
// driver and both partition graphs.
type Cache struct {
	normalized map[string]string
}

// NewCache creates an empty normalisation cache.
func NewCache() *Cache {
	return &Cache{normalized: make(map[string]string)}
}

// Normalize returns the cached normalised form of name, computing and
// storing it on first use.
func (c *Cache) Normalize(name string) string {
	if n, ok := c.normalized[name]; ok {
		return n
	}
	n := Normalize(name)
	c.normalized[name] = n
	return n
}

// Equal reports whether a and b name the same plugin, using the cache
// to avoid repeated case folding of names seen before.
func (c *Cache) Equal(a, b string) bool {
	return c.Normalize(a) == c.Normalize(b)
}

// Compare is like Compare but backed by the cache.
func (c *Cache) Compare(a, b string) int {
	return strings.Compare(c.Normalize(a), c.Normalize(b))
}
