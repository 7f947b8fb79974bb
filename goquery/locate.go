package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitetext"
)

// locate returns the first element in document order matching the
// highest-priority selector that matches anything, or nil when no
// selector matches.
func locate(doc *goquery.Document, selectors []sitetext.Selector) *goquery.Selection {
	for _, sel := range selectors {
		attrs := sel.Attrs
		found := doc.Find(sel.Tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
			return matchesAttrs(s, attrs)
		})
		if found.Length() > 0 {
			return found.First()
		}
	}
	return nil
}

// matchesAttrs reports whether the selection carries every required
// attribute key/value pair.
func matchesAttrs(s *goquery.Selection, attrs map[string]string) bool {
	for key, want := range attrs {
		got, exists := s.Attr(key)
		if !exists || got != want {
			return false
		}
	}
	return true
}
