package topsites

import "context"

// Default listing location.
const (
	DefaultStartURL = "http://www.alexa.com/topsites/countries/SE"
	DefaultOrigin   = "http://www.alexa.com"
)

// StopReason records why a pagination run ended.
type StopReason string

// Stop reasons.
const (
	StopQuota     StopReason = "quota"
	StopExhausted StopReason = "exhausted"
	StopCycle     StopReason = "cycle"
	StopPageLimit StopReason = "page-limit"
	StopCanceled  StopReason = "canceled"
)

// Result holds the entries collected by a pagination run.
type Result struct {
	// Entries are the first quota entries in discovery order.
	Entries []string

	// Pages is the number of pages fetched, including failed fetches.
	Pages int

	// Failed is the number of pages whose fetch failed.
	Failed int

	// Visited approximates the distinct locators seen, including the start URL.
	Visited int

	Stop StopReason
}

// PageProgress reports the outcome of one fetched page.
type PageProgress struct {
	URL     string
	Page    int // 1-based
	Entries int // entries found on this page
	Total   int // entries collected so far
	Error   error
}

// PageProgressFunc is called after each page is processed.
type PageProgressFunc func(PageProgress)

// Paginator collects entries by walking a paginated listing.
type Paginator interface {
	// Extract walks the listing from startURL until quota entries are
	// collected or no next page exists. The quota must be in [1, MaxQuota].
	// The returned Result is never nil.
	Extract(ctx context.Context, startURL string, quota int) (*Result, error)
}
