package mock

import "github.com/fwojciec/topsites"

var _ topsites.QueryEngine = (*QueryEngine)(nil)

// QueryEngine is a mock implementation of topsites.QueryEngine.
type QueryEngine struct {
	ParseFn func(html string) (topsites.Document, error)
	NameFn  func() string
}

func (e *QueryEngine) Parse(html string) (topsites.Document, error) {
	return e.ParseFn(html)
}

func (e *QueryEngine) Name() string {
	return e.NameFn()
}

var _ topsites.Document = (*Document)(nil)

// Document is a mock implementation of topsites.Document.
type Document struct {
	TextsFn func(selector string) ([]string, error)
	AttrFn  func(selector, name string) (string, bool, error)
}

func (d *Document) Texts(selector string) ([]string, error) {
	return d.TextsFn(selector)
}

func (d *Document) Attr(selector, name string) (string, bool, error) {
	return d.AttrFn(selector, name)
}
