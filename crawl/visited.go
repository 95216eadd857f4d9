package crawl

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/topsites/bloom"
)

// visitedFalsePositiveRate keeps a spurious cycle stop vanishingly unlikely
// at DefaultMaxPages locators.
const visitedFalsePositiveRate = 1e-6

// Visited tracks the locators and page bodies seen during one run so that
// next-link cycles and pages served twice end the run instead of looping.
// Visited is not safe for concurrent use.
type Visited struct {
	locators *bloom.Filter
	pages    map[uint64]struct{}
}

// NewVisited creates a Visited set sized for n pages.
func NewVisited(n uint) *Visited {
	if n == 0 {
		n = DefaultMaxPages
	}
	return &Visited{
		locators: bloom.NewFilter(n, visitedFalsePositiveRate),
		pages:    make(map[uint64]struct{}),
	}
}

// Visit records a locator and reports whether it was new.
// URL fragments are ignored.
func (v *Visited) Visit(locator string) bool {
	if idx := strings.Index(locator, "#"); idx != -1 {
		locator = locator[:idx]
	}
	return !v.locators.TestAndAdd(locator)
}

// Count approximates the number of distinct locators visited.
func (v *Visited) Count() int {
	return int(v.locators.EstimatedCount())
}

// Repeated records the fingerprint of a page body and reports whether an
// identical body was already seen.
func (v *Visited) Repeated(html string) bool {
	fp := Fingerprint(html)
	if _, ok := v.pages[fp]; ok {
		return true
	}
	v.pages[fp] = struct{}{}
	return false
}

// Fingerprint computes an xxhash of a page body.
func Fingerprint(html string) uint64 {
	return xxhash.Sum64String(html)
}
