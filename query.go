package topsites

// Document is a parsed HTML page that can be queried with selector expressions.
// The selector language depends on the QueryEngine that produced the Document.
type Document interface {
	// Texts returns the trimmed text content of every node matching selector,
	// in document order. A selector with no matches returns an empty slice.
	Texts(selector string) ([]string, error)

	// Attr returns the named attribute of the first node matching selector.
	// The bool result is false when nothing matches or the attribute is absent.
	Attr(selector, name string) (string, bool, error)
}

// QueryEngine parses HTML into a queryable Document.
type QueryEngine interface {
	// Parse builds a Document from raw HTML.
	Parse(html string) (Document, error)

	// Name returns the engine's identifier (e.g., "css", "xpath").
	Name() string
}

// Selectors identifies the entry nodes and the next-page link on a listing page.
type Selectors struct {
	// Entry matches the nodes whose text is a single entry.
	Entry string

	// Next matches the "next page" link element.
	Next string

	// NextAttr is the attribute of the Next element holding the target address.
	// Empty means "href".
	NextAttr string
}

// Attr returns the next-link attribute name, defaulting to "href".
func (s Selectors) Attr() string {
	if s.NextAttr == "" {
		return "href"
	}
	return s.NextAttr
}

// Default selectors for the Alexa top sites listing.
var (
	CSSSelectors = Selectors{
		Entry: "span.small.topsites-label",
		Next:  "a.next",
	}
	XPathSelectors = Selectors{
		Entry: `//span[@class="small topsites-label"]`,
		Next:  `//a[@class="next"]`,
	}
)
