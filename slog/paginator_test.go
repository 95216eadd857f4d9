package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/topsites"
	"github.com/fwojciec/topsites/mock"
	locslog "github.com/fwojciec/topsites/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPaginator_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs run summary with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Paginator{
			ExtractFn: func(ctx context.Context, startURL string, quota int) (*topsites.Result, error) {
				return &topsites.Result{
					Entries: []string{"Google.se", "Youtube.com"},
					Pages:   1,
					Visited: 1,
					Stop:    topsites.StopExhausted,
				}, nil
			},
		}

		p := locslog.NewLoggingPaginator(inner, logger)
		result, err := p.Extract(context.Background(), "http://www.alexa.com/topsites/countries/SE", 20)

		require.NoError(t, err)
		assert.Len(t, result.Entries, 2)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "url=http://www.alexa.com/topsites/countries/SE")
		assert.Contains(t, output, "quota=20")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "pages=1")
		assert.Contains(t, output, "visited=1")
		assert.Contains(t, output, "stop=exhausted")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Paginator{
			ExtractFn: func(ctx context.Context, startURL string, quota int) (*topsites.Result, error) {
				return nil, errors.New("bad selector")
			},
		}

		p := locslog.NewLoggingPaginator(inner, logger)
		_, err := p.Extract(context.Background(), "http://example.com", 5)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.NotContains(t, output, "count=")
		assert.Contains(t, output, "err=\"bad selector\"")
	})
}

func TestPageLogger(t *testing.T) {
	t.Parallel()

	t.Run("logs page entries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		locslog.PageLogger(logger)(topsites.PageProgress{
			URL:     "http://example.com/top;2",
			Page:    2,
			Entries: 25,
			Total:   50,
		})

		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "url=http://example.com/top;2")
		assert.Contains(t, output, "entries=25")
		assert.Contains(t, output, "total=50")
	})

	t.Run("logs failures as warnings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		locslog.PageLogger(logger)(topsites.PageProgress{
			URL:   "http://example.com/top;1",
			Page:  1,
			Error: errors.New("HTTP 503"),
		})

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "page failed")
		assert.Contains(t, output, "err=\"HTTP 503\"")
	})
}
