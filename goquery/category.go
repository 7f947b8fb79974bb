package goquery

import "strings"

// Category classifies an element for text extraction.
type Category int

// Element categories. Transparent elements contribute their children's
// text with no delimiter of their own.
const (
	CategoryTransparent Category = iota
	CategorySkip
	CategoryLineBreak
	CategoryBlock
)

// skipElements are non-content elements whose entire subtree is
// excluded from output: scripts, styles, media, embedded objects,
// forms and form controls, frame structure, images, and metadata.
var skipElements = map[string]struct{}{
	"script":   {},
	"noscript": {},
	"canvas":   {},
	"meta":     {},
	"svg":      {},
	"map":      {},
	"area":     {},
	"audio":    {},
	"source":   {},
	"track":    {},
	"video":    {},
	"embed":    {},
	"object":   {},
	"param":    {},
	"picture":  {},
	"iframe":   {},
	"frame":    {},
	"frameset": {},
	"noframes": {},
	"applet":   {},
	"form":     {},
	"button":   {},
	"select":   {},
	"base":     {},
	"style":    {},
	"img":      {},
}

// blockElements terminate a line of text in the flattened output.
// Must stay disjoint from skipElements.
var blockElements = map[string]struct{}{
	"p":     {},
	"div":   {},
	"ul":    {},
	"ol":    {},
	"li":    {},
	"h1":    {},
	"h2":    {},
	"h3":    {},
	"h4":    {},
	"h5":    {},
	"h6":    {},
	"pre":   {},
	"table": {},
	"tr":    {},
}

// Categorize returns the extraction category for an element name.
func Categorize(name string) Category {
	name = strings.ToLower(name)
	if name == "br" {
		return CategoryLineBreak
	}
	if _, ok := skipElements[name]; ok {
		return CategorySkip
	}
	if _, ok := blockElements[name]; ok {
		return CategoryBlock
	}
	return CategoryTransparent
}
