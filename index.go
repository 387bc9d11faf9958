package docview

import (
	"slices"
	"sync"
)

// Index maps canonical addresses to the item currently loaded there. It is
// created empty at the start of a browsing session and lives as long as the
// session; entries are inserted or overwritten, never removed.
//
// Index is safe for concurrent use, but the items it holds are not: they
// are mutated only while a load holds the session lock.
type Index struct {
	mu    sync.RWMutex
	items map[string]Item
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{items: make(map[string]Item)}
}

// Register stores it under address, replacing any previous entry.
func (x *Index) Register(address string, it Item) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.items[address] = it
}

// Lookup returns the item at address, or fallback.
func (x *Index) Lookup(address string, fallback Item) Item {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if it, ok := x.items[address]; ok {
		return it
	}
	return fallback
}

// LookupLocation returns the item at loc ignoring its anchor. The package
// qualified address is tried first, then the package-less form under which
// members are registered. Returns nil when neither is present.
func (x *Index) LookupLocation(loc Location) Item {
	if it := x.Lookup(loc.WithoutAnchor(), nil); it != nil {
		return it
	}
	if loc.Package != "" && loc.Library != "" {
		return x.Lookup(loc.QualifiedName(), nil)
	}
	return nil
}

// NearestPage walks from loc towards the root and returns the first item
// that is displayed as a page, or nil.
func (x *Index) NearestPage(loc Location) Item {
	for {
		if it := x.LookupLocation(loc); it != nil && it.Kind().IsPage() {
			return it
		}
		if loc.IsEmpty() {
			return nil
		}
		loc = loc.ParentLocation()
	}
}

// Path returns the ancestors of it from the root down, excluding it.
func (x *Index) Path(it Item) []Item {
	var path []Item
	loc := it.Location()
	for !loc.IsEmpty() {
		loc = loc.ParentLocation()
		if loc.Anchor != "" {
			continue
		}
		parent := x.LookupLocation(loc)
		if parent == nil || parent == it {
			continue
		}
		if len(path) > 0 && path[len(path)-1] == parent {
			continue
		}
		path = append(path, parent)
	}
	slices.Reverse(path)
	return path
}

// Len returns the number of registered addresses.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.items)
}

// Addresses returns every registered address in sorted order.
func (x *Index) Addresses() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]string, 0, len(x.items))
	for k := range x.items {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
