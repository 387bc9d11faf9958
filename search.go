package docview

import (
	"slices"
	"strings"
)

// SearchResult is one entry of the search index.
type SearchResult struct {
	Address string
	Kind    string
}

// SearchIndex maps every documented address to the kind of entity found
// there. It is loaded from the SearchIndexName payload.
type SearchIndex struct {
	entries []SearchResult
}

// NewSearchIndex builds an index from a record of address to kind.
func NewSearchIndex(rec Record) *SearchIndex {
	x := &SearchIndex{entries: make([]SearchResult, 0, rec.Len())}
	for _, address := range rec.Keys() {
		x.entries = append(x.entries, SearchResult{Address: address, Kind: rec.String(address)})
	}
	slices.SortFunc(x.entries, func(a, b SearchResult) int {
		return strings.Compare(a.Address, b.Address)
	})
	return x
}

// Len returns the number of entries.
func (x *SearchIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Search returns the entries whose address, or the last component of it,
// starts with prefix, ignoring case. Results are in address order and at
// most limit long; a limit of zero means no limit.
func (x *SearchIndex) Search(prefix string, limit int) []SearchResult {
	if x == nil {
		return nil
	}
	prefix = strings.ToLower(prefix)
	var out []SearchResult
	for _, e := range x.entries {
		if !matchesPrefix(e.Address, prefix) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func matchesPrefix(address, prefix string) bool {
	address = strings.ToLower(address)
	if strings.HasPrefix(address, prefix) {
		return true
	}
	if i := strings.LastIndexAny(address, "./"); i >= 0 {
		return strings.HasPrefix(address[i+1:], prefix)
	}
	return false
}
