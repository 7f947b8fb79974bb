// Package trafilatura provides an alternative extraction engine built
// on go-trafilatura's heuristics instead of fixed tag selectors.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sitetext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitetext.Extractor at compile time.
var _ sitetext.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes a raw HTML page and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*sitetext.ExtractResult, error) {
	if rawHTML == "" {
		return nil, sitetext.Errorf(sitetext.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &sitetext.ExtractResult{
		Title:       result.Metadata.Title,
		Text:        sitetext.NormalizeText(result.ContentText),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
