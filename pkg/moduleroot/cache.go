package moduleroot

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes module roots and manifest names.
//
// The zero value is not usable; create one with NewCache. A Cache is safe for
// concurrent use. Every stored value is a pure function of its key, so
// concurrent writers may race without losing information.
type Cache struct {
	roots sync.Map // directory -> rootEntry
	names sync.Map // root directory -> string
	group singleflight.Group
}

type rootEntry struct {
	dir string
	ok  bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Reset forgets every memoized root and name.
func (c *Cache) Reset() {
	c.roots.Range(func(key, _ any) bool {
		c.roots.Delete(key)
		return true
	})
	c.names.Range(func(key, _ any) bool {
		c.names.Delete(key)
		return true
	})
}

// Len returns the number of memoized directories.
func (c *Cache) Len() int {
	n := 0
	c.roots.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *Cache) root(dir string) (rootEntry, bool) {
	value, ok := c.roots.Load(dir)
	if !ok {
		return rootEntry{}, false
	}
	entry, ok := value.(rootEntry)
	return entry, ok
}

func (c *Cache) storeRoot(dir string, entry rootEntry) {
	c.roots.Store(dir, entry)
}

func (c *Cache) name(root string) (string, bool) {
	value, ok := c.names.Load(root)
	if !ok {
		return "", false
	}
	name, ok := value.(string)
	return name, ok
}

func (c *Cache) storeName(root, name string) {
	c.names.Store(root, name)
}
