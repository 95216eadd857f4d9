package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/topsites"
	main "github.com/fwojciec/topsites/cmd/topsites"
	"github.com/fwojciec/topsites/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes URL and quota to paginator", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		var gotQuota int
		paginator := &mock.Paginator{
			ExtractFn: func(_ context.Context, startURL string, quota int) (*topsites.Result, error) {
				gotURL, gotQuota = startURL, quota
				return &topsites.Result{Entries: []string{"Google.se", "Youtube.com"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Paginator: paginator,
		}

		cmd := &main.ListCmd{URL: "http://example.com/top", Quota: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "http://example.com/top", gotURL)
		assert.Equal(t, 2, gotQuota)
		assert.Equal(t, "Google.se\nYoutube.com\n", stdout.String())
	})

	t.Run("prints partial entries when deadline passes", func(t *testing.T) {
		t.Parallel()

		paginator := &mock.Paginator{
			ExtractFn: func(_ context.Context, _ string, _ int) (*topsites.Result, error) {
				return &topsites.Result{
					Entries: []string{"Google.se"},
					Stop:    topsites.StopCanceled,
				}, context.DeadlineExceeded
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Paginator: paginator,
		}

		err := (&main.ListCmd{URL: "http://example.com", Quota: 20}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Google.se\n", stdout.String())
		assert.Contains(t, stderr.String(), "stopped early")
	})

	t.Run("reports configuration errors", func(t *testing.T) {
		t.Parallel()

		paginator := &mock.Paginator{
			ExtractFn: func(_ context.Context, _ string, _ int) (*topsites.Result, error) {
				return &topsites.Result{}, topsites.Errorf(topsites.EINVALID, "invalid XPath %q", "//a[")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Paginator: paginator,
		}

		err := (&main.ListCmd{URL: "http://example.com", Quota: 20}).Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "invalid XPath")
	})
}
