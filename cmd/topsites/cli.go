package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/topsites"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Count    string        `short:"n" placeholder:"N" help:"Number of sites to list, 1-${max_quota}; anything else lists ${default_quota}"`
	URL      string        `default:"${start_url}" help:"First listing page"`
	Origin   string        `help:"Base for relative next links (default: scheme and host of --url)"`
	Engine   string        `short:"e" default:"css" help:"Selector language: css or xpath"`
	Entry    string        `help:"Selector for entry nodes (default depends on --engine)"`
	Next     string        `help:"Selector for the next-page link (default depends on --engine)"`
	NextAttr string        `default:"href" help:"Attribute of the next-page link holding its target"`
	Browser  bool          `short:"b" help:"Render pages with headless Chrome"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Deadline time.Duration `help:"Time budget for the whole run, 0 for none"`
	MaxPages int           `default:"1000" help:"Maximum pages to fetch"`
	Debug    bool          `short:"d" help:"Log fetches and pages to stderr"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Paginator topsites.Paginator
}

// ListCmd prints the first Quota entries of the listing at URL.
type ListCmd struct {
	URL   string
	Quota int
}

// Run executes the list command.
// Entries collected before a deadline or cancellation are still printed.
func (c *ListCmd) Run(deps *Dependencies) error {
	result, err := deps.Paginator.Extract(deps.Ctx, c.URL, c.Quota)
	if result != nil {
		for _, entry := range result.Entries {
			fmt.Fprintln(deps.Stdout, entry)
		}
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			fmt.Fprintf(deps.Stderr, "stopped early: %v\n", err)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", topsites.ErrorMessage(err))
		return err
	}
	return nil
}
