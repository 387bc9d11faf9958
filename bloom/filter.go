// Package bloom provides address deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers addresses in constant space. It may report an address
// as present that was never added, at the configured rate.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n addresses with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records an address.
func (f *Filter) Add(address string) {
	f.f.AddString(address)
}

// Test reports whether the address might have been added.
func (f *Filter) Test(address string) bool {
	return f.f.TestString(address)
}

// TestAndAdd records an address and reports whether it might have been
// added before.
func (f *Filter) TestAndAdd(address string) bool {
	return f.f.TestAndAddString(address)
}

// EstimatedCount returns the approximate number of distinct addresses.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
