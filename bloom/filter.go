// Package bloom provides a probabilistic seen-set for listing locators.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter records which locators a pagination run has already visited.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected locators
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd marks the locator as visited and reports whether it
// might have been visited before.
// False positives are possible; false negatives are not.
func (f *Filter) TestAndAdd(locator string) bool {
	return f.f.TestAndAddString(locator)
}

// EstimatedCount returns the approximate number of visited locators.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
