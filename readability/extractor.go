// Package readability provides an alternative extraction engine built
// on go-readability's scoring instead of fixed tag selectors.
package readability

import (
	"strings"

	"github.com/fwojciec/sitetext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitetext.Extractor at compile time.
var _ sitetext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &sitetext.ExtractResult{
		Title:       article.Title,
		Text:        sitetext.NormalizeText(article.TextContent),
		ContentHTML: article.Content,
	}, nil
}
