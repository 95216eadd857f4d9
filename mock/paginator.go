package mock

import (
	"context"

	"github.com/fwojciec/topsites"
)

var _ topsites.Paginator = (*Paginator)(nil)

// Paginator is a mock implementation of topsites.Paginator.
type Paginator struct {
	ExtractFn func(ctx context.Context, startURL string, quota int) (*topsites.Result, error)
}

func (p *Paginator) Extract(ctx context.Context, startURL string, quota int) (*topsites.Result, error) {
	return p.ExtractFn(ctx, startURL, quota)
}
