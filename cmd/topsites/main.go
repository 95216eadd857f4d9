package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/topsites"
	"github.com/fwojciec/topsites/crawl"
	"github.com/fwojciec/topsites/goquery"
	"github.com/fwojciec/topsites/htmlquery"
	tshttp "github.com/fwojciec/topsites/http"
	"github.com/fwojciec/topsites/rod"
	tsslog "github.com/fwojciec/topsites/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("topsites"),
		kong.Description("List the top ranked sites from a paginated listing, one per line"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		// Counts such as "-n -5" are values, not flags.
		kong.WithHyphenPrefixedParameters(true),
		kong.Vars{
			"start_url":     topsites.DefaultStartURL,
			"default_quota": fmt.Sprint(topsites.DefaultQuota),
			"max_quota":     fmt.Sprint(topsites.MaxQuota),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	engine, selectors, err := cli.queryEngine()
	if err != nil {
		return err
	}

	var fetcher topsites.Fetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = tshttp.NewFetcher(tshttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Engine:    engine,
		Selectors: selectors,
		Origin:    cli.Origin,
		MaxPages:  cli.MaxPages,
	}
	var paginator topsites.Paginator = crawler

	// Debug mode wraps services with logging decorators; otherwise stderr stays quiet.
	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())
		fetcher = tsslog.NewLoggingFetcher(fetcher, logger)
		crawler.Progress = tsslog.PageLogger(logger)
		paginator = tsslog.NewLoggingPaginator(crawler, logger)
	}
	crawler.Fetcher = fetcher

	if cli.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cli.Deadline)
		defer cancel()
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Paginator: paginator,
	}

	cmd := &ListCmd{
		URL:   cli.URL,
		Quota: topsites.ParseQuota(cli.Count),
	}
	return cmd.Run(deps)
}

// queryEngine returns the engine chosen by --engine and its selectors,
// with any --entry/--next/--next-attr overrides applied.
func (c *CLI) queryEngine() (topsites.QueryEngine, topsites.Selectors, error) {
	var engine topsites.QueryEngine
	var selectors topsites.Selectors
	switch c.Engine {
	case "", "css":
		engine, selectors = goquery.NewEngine(), topsites.CSSSelectors
	case "xpath":
		engine, selectors = htmlquery.NewEngine(), topsites.XPathSelectors
	default:
		return nil, topsites.Selectors{}, topsites.Errorf(topsites.EINVALID, "unknown engine %q (want css or xpath)", c.Engine)
	}
	if c.Entry != "" {
		selectors.Entry = c.Entry
	}
	if c.Next != "" {
		selectors.Next = c.Next
	}
	selectors.NextAttr = c.NextAttr
	return engine, selectors, nil
}
