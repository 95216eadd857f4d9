// Package crawl walks paginated listings and collects their entries.
package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/topsites"
)

// DefaultMaxPages caps the number of pages fetched in one run to prevent
// runaway pagination.
const DefaultMaxPages = 1000

// Ensure Crawler implements topsites.Paginator at compile time.
var _ topsites.Paginator = (*Crawler)(nil)

// state is the pagination state machine. A run starts in stateFetchingMore
// and never leaves stateDone once it gets there.
type state int

const (
	stateFetchingMore state = iota
	stateDone
)

// Crawler collects entries by following a listing's next-page links.
// Pages are fetched strictly one after another.
type Crawler struct {
	Fetcher   topsites.Fetcher
	Engine    topsites.QueryEngine
	Selectors topsites.Selectors

	// Origin is the base that relative next links resolve against.
	// Defaults to the scheme and host of the start URL.
	Origin string

	// MaxPages limits the pages fetched per run. Defaults to DefaultMaxPages.
	MaxPages int

	// Progress, if set, is called after every fetched page.
	Progress topsites.PageProgressFunc
}

// run holds the mutable state of a single Extract call.
type run struct {
	state   state
	current string
	entries []string
	visited *Visited
	result  *topsites.Result
}

func (r *run) finish(reason topsites.StopReason) {
	r.state = stateDone
	r.result.Stop = reason
}

// close fills in the result fields that are only known once the run ends.
func (r *run) close(quota int) {
	r.result.Entries = truncate(r.entries, quota)
	r.result.Visited = r.visited.Count()
}

// Extract walks the listing starting at startURL until quota entries are
// collected, no next link is found, or a safeguard stops the run.
//
// Fetch and parse failures do not abort the run: the failed page yields no
// entries and no next link, so pagination ends with what was collected.
// A canceled context returns the partial result along with ctx.Err().
func (c *Crawler) Extract(ctx context.Context, startURL string, quota int) (*topsites.Result, error) {
	result := &topsites.Result{}
	if quota < 1 || quota > topsites.MaxQuota {
		return result, topsites.Errorf(topsites.EINVALID, "quota %d outside [1, %d]", quota, topsites.MaxQuota)
	}

	origin, err := c.origin(startURL)
	if err != nil {
		return result, err
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	r := &run{
		state:   stateFetchingMore,
		current: startURL,
		visited: NewVisited(uint(min(maxPages, DefaultMaxPages))),
		result:  result,
	}
	r.visited.Visit(startURL)

	for r.state == stateFetchingMore {
		if ctx.Err() != nil {
			r.finish(topsites.StopCanceled)
			break
		}
		if result.Pages >= maxPages {
			r.finish(topsites.StopPageLimit)
			break
		}
		if err := c.step(ctx, r, origin, quota); err != nil {
			r.close(quota)
			return result, err
		}
	}

	r.close(quota)
	if result.Stop == topsites.StopCanceled {
		return result, ctx.Err()
	}
	return result, nil
}

// step fetches and processes the current page, advancing r.current or
// moving the run to stateDone. Only configuration errors are returned.
func (c *Crawler) step(ctx context.Context, r *run, origin *url.URL, quota int) error {
	r.result.Pages++
	progress := topsites.PageProgress{URL: r.current, Page: r.result.Pages}

	html, err := c.Fetcher.Fetch(ctx, r.current)
	if err != nil {
		r.result.Failed++
		progress.Error = err
		progress.Total = len(r.entries)
		c.report(progress)
		if ctx.Err() != nil {
			r.finish(topsites.StopCanceled)
		} else {
			r.finish(topsites.StopExhausted)
		}
		return nil
	}

	if r.visited.Repeated(html) {
		progress.Total = len(r.entries)
		c.report(progress)
		r.finish(topsites.StopCycle)
		return nil
	}

	doc, err := c.Engine.Parse(html)
	if err != nil {
		progress.Error = err
		progress.Total = len(r.entries)
		c.report(progress)
		r.finish(topsites.StopExhausted)
		return nil
	}

	texts, err := doc.Texts(c.Selectors.Entry)
	if err != nil {
		return err
	}
	r.entries = append(r.entries, texts...)
	progress.Entries = len(texts)
	progress.Total = len(r.entries)
	c.report(progress)

	if len(r.entries) >= quota {
		r.finish(topsites.StopQuota)
		return nil
	}

	href, ok, err := doc.Attr(c.Selectors.Next, c.Selectors.Attr())
	if err != nil {
		return err
	}
	next := ""
	if ok {
		next = resolveURL(origin, href)
	}
	if next == "" {
		r.finish(topsites.StopExhausted)
		return nil
	}
	if !r.visited.Visit(next) {
		r.finish(topsites.StopCycle)
		return nil
	}
	r.current = next
	return nil
}

func (c *Crawler) report(p topsites.PageProgress) {
	if c.Progress != nil {
		c.Progress(p)
	}
}

// origin returns the configured origin, or the scheme and host of startURL.
func (c *Crawler) origin(startURL string) (*url.URL, error) {
	if c.Origin != "" {
		u, err := url.Parse(c.Origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, topsites.Errorf(topsites.EINVALID, "invalid origin %q", c.Origin)
		}
		return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}, nil
	}
	u, err := url.Parse(startURL)
	if err != nil {
		return nil, topsites.Errorf(topsites.EINVALID, "invalid start URL %q", startURL)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}, nil
}

// resolveURL joins a next-link target onto the origin. Absolute targets are
// returned unchanged apart from fragment removal. Empty or unparseable
// targets return the empty string.
func resolveURL(origin *url.URL, href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := origin.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

func truncate(entries []string, quota int) []string {
	if len(entries) > quota {
		return entries[:quota]
	}
	return entries
}
