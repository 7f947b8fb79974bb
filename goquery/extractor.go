// Package goquery implements the native main-content extraction engine
// on top of PuerkitoBio/goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitetext"
	"golang.org/x/net/html"
)

// probeHTML is parsed at construction time to validate parser options.
const probeHTML = "<html><body>Parser builder library test.</body></html>"

// indexLinkRatio is the link-to-text ratio at or above which a page is
// treated as an index page.
const indexLinkRatio = 0.5

// defaultSelectors locate main content on pages produced by common
// documentation generators. Order is priority order; a custom selector,
// when configured, is checked before both.
var defaultSelectors = []sitetext.Selector{
	{Tag: "main", Attrs: map[string]string{"id": "main-content"}},
	{Tag: "div", Attrs: map[string]string{"role": "main"}},
}

// Ensure Extractor implements sitetext.Extractor at compile time.
var _ sitetext.Extractor = (*Extractor)(nil)

// Extractor locates the main-content subtree of a page and flattens it
// to plain text, preserving block structure as newlines.
type Extractor struct {
	selectors    []sitetext.Selector
	excludeIndex bool
	parseOpts    []html.ParseOption
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCustomSelector adds a selector checked before the built-in ones.
func WithCustomSelector(sel sitetext.Selector) Option {
	return func(e *Extractor) {
		e.selectors = append([]sitetext.Selector{sel}, e.selectors...)
	}
}

// WithExcludeIndexPages rejects link-dominated pages (link ratio >= 0.5),
// typically tables of contents, treating them as having no content.
func WithExcludeIndexPages() Option {
	return func(e *Extractor) {
		e.excludeIndex = true
	}
}

// WithParseOptions forwards options to the underlying HTML parser.
func WithParseOptions(opts ...html.ParseOption) Option {
	return func(e *Extractor) {
		e.parseOpts = append(e.parseOpts, opts...)
	}
}

// NewExtractor creates an Extractor. The forwarded parser options are
// validated by parsing a trivial fixed fragment; NewExtractor fails if
// that probe parse fails or a configured selector is invalid.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		selectors: defaultSelectors,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, sel := range e.selectors {
		if err := sel.Validate(); err != nil {
			return nil, err
		}
	}

	if _, err := html.ParseWithOptions(strings.NewReader(probeHTML), e.parseOpts...); err != nil {
		return nil, sitetext.Errorf(sitetext.ECONFIG, "parser options do not appear valid: %v", err)
	}

	return e, nil
}

// Extract processes a raw HTML page and returns the main content.
// Pages with no element matching any configured selector yield empty
// text, as do index pages when the index filter is enabled.
func (e *Extractor) Extract(rawHTML string) (*sitetext.ExtractResult, error) {
	node, err := html.ParseWithOptions(strings.NewReader(rawHTML), e.parseOpts...)
	if err != nil {
		return nil, sitetext.Errorf(sitetext.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(node)

	result := &sitetext.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	main := locate(doc, e.selectors)
	if main == nil {
		return result, nil
	}
	if e.excludeIndex && LinkRatio(main) >= indexLinkRatio {
		return result, nil
	}

	result.Text = sitetext.NormalizeText(extractText(main.Nodes[0]))

	contentHTML, err := goquery.OuterHtml(main)
	if err != nil {
		return nil, sitetext.Errorf(sitetext.EINTERNAL, "failed to render content: %v", err)
	}
	result.ContentHTML = contentHTML

	return result, nil
}

// extractText flattens a subtree to text according to the element
// category tables: skipped subtrees contribute nothing, br becomes a
// newline, block elements emit their children followed by a newline,
// and everything else is transparent.
func extractText(n *html.Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		switch Categorize(n.Data) {
		case CategorySkip:
			return
		case CategoryLineBreak:
			b.WriteByte('\n')
			return
		case CategoryBlock:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				writeText(b, c)
			}
			b.WriteByte('\n')
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}
