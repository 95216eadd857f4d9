// Package htmlquery implements topsites.QueryEngine with XPath expressions.
package htmlquery

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/fwojciec/topsites"
	"golang.org/x/net/html"
)

var (
	_ topsites.QueryEngine = (*Engine)(nil)
	_ topsites.Document    = (*Document)(nil)
)

// Engine parses HTML into documents queried with XPath.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Name returns the engine's identifier.
func (e *Engine) Name() string {
	return "xpath"
}

// Parse builds a Document from raw HTML.
func (e *Engine) Parse(s string) (topsites.Document, error) {
	root, err := htmlquery.Parse(strings.NewReader(s))
	if err != nil {
		return nil, topsites.Errorf(topsites.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{root: root}, nil
}

// Document is a parsed page queried with XPath.
type Document struct {
	root *html.Node
}

// Texts returns the trimmed inner text of every node matching expr.
func (d *Document) Texts(expr string) ([]string, error) {
	nodes, err := htmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, topsites.Errorf(topsites.EINVALID, "invalid XPath %q: %v", expr, err)
	}
	texts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		texts = append(texts, strings.TrimSpace(htmlquery.InnerText(n)))
	}
	return texts, nil
}

// Attr returns the named attribute of the first node matching expr.
func (d *Document) Attr(expr, name string) (string, bool, error) {
	n, err := htmlquery.Query(d.root, expr)
	if err != nil {
		return "", false, topsites.Errorf(topsites.EINVALID, "invalid XPath %q: %v", expr, err)
	}
	if n == nil || !htmlquery.ExistsAttr(n, name) {
		return "", false, nil
	}
	return htmlquery.SelectAttr(n, name), true, nil
}
