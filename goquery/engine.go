// Package goquery implements topsites.QueryEngine with CSS selectors.
package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/topsites"
)

var (
	_ topsites.QueryEngine = (*Engine)(nil)
	_ topsites.Document    = (*Document)(nil)
)

// Engine parses HTML into documents queried with CSS selectors.
// Selectors are compiled once per Engine and shared by its documents.
type Engine struct {
	mu        sync.Mutex
	selectors map[string]cascadia.Selector
}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Name returns the engine's identifier.
func (e *Engine) Name() string {
	return "css"
}

// Parse builds a Document from raw HTML.
func (e *Engine) Parse(html string) (topsites.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, topsites.Errorf(topsites.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc, engine: e}, nil
}

// compile returns the cached matcher for selector, compiling it on first use.
// Compiling up front matters because goquery silently matches nothing for an
// invalid selector.
func (e *Engine) compile(selector string) (cascadia.Selector, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if m, ok := e.selectors[selector]; ok {
		return m, nil
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, topsites.Errorf(topsites.EINVALID, "invalid CSS selector %q: %v", selector, err)
	}
	if e.selectors == nil {
		e.selectors = make(map[string]cascadia.Selector)
	}
	e.selectors[selector] = m
	return m, nil
}

// Document is a parsed page queried with CSS selectors.
type Document struct {
	doc    *goquery.Document
	engine *Engine
}

// Texts returns the trimmed text of every element matching selector.
func (d *Document) Texts(selector string) ([]string, error) {
	sel, err := d.find(selector)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return texts, nil
}

// Attr returns the named attribute of the first element matching selector.
func (d *Document) Attr(selector, name string) (string, bool, error) {
	sel, err := d.find(selector)
	if err != nil {
		return "", false, err
	}
	val, ok := sel.First().Attr(name)
	return val, ok, nil
}

func (d *Document) find(selector string) (*goquery.Selection, error) {
	m, err := d.engine.compile(selector)
	if err != nil {
		return nil, err
	}
	return d.doc.FindMatcher(m), nil
}
