package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/topsites"
)

// Ensure LoggingPaginator implements topsites.Paginator.
var _ topsites.Paginator = (*LoggingPaginator)(nil)

// LoggingPaginator wraps a Paginator and logs a summary of each run.
type LoggingPaginator struct {
	next   topsites.Paginator
	logger *slog.Logger
}

// NewLoggingPaginator creates a new LoggingPaginator.
func NewLoggingPaginator(next topsites.Paginator, logger *slog.Logger) *LoggingPaginator {
	return &LoggingPaginator{next: next, logger: logger}
}

// Extract delegates to the wrapped paginator and logs the outcome.
func (p *LoggingPaginator) Extract(ctx context.Context, startURL string, quota int) (result *topsites.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", startURL, "quota", quota}
		if result != nil {
			attrs = append(attrs,
				"count", len(result.Entries),
				"pages", result.Pages,
				"failed", result.Failed,
				"visited", result.Visited,
				"stop", string(result.Stop),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		p.logger.Info("extract", attrs...)
	}(time.Now())
	return p.next.Extract(ctx, startURL, quota)
}

// PageLogger returns a progress callback that logs every processed page.
func PageLogger(logger *slog.Logger) topsites.PageProgressFunc {
	return func(p topsites.PageProgress) {
		if p.Error != nil {
			logger.Warn("page failed",
				"url", p.URL,
				"page", p.Page,
				"total", p.Total,
				"err", p.Error,
			)
			return
		}
		logger.Info("page",
			"url", p.URL,
			"page", p.Page,
			"entries", p.Entries,
			"total", p.Total,
		)
	}
}
