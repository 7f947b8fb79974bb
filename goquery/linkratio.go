package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// LinkRatio returns the fraction of a subtree's text that sits inside
// anchor elements, in [0, 1]. Text is measured as the rune count of
// the concatenation of all whitespace-trimmed text nodes in document
// order; anchor text is counted once per anchor occurrence, without
// deduplication. A subtree with no text has ratio 0.
func LinkRatio(sel *goquery.Selection) float64 {
	var total strings.Builder
	for _, n := range sel.Nodes {
		collectStrippedText(&total, n)
	}
	if total.Len() == 0 {
		return 0
	}

	var link strings.Builder
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		for _, n := range a.Nodes {
			collectStrippedText(&link, n)
		}
	})

	return float64(utf8.RuneCountInString(link.String())) /
		float64(utf8.RuneCountInString(total.String()))
}

// collectStrippedText appends every non-empty whitespace-trimmed text
// node under n, in document order.
func collectStrippedText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectStrippedText(b, c)
	}
}
