package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitetext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mainSelection(t *testing.T, html string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find(`div[role="main"]`)
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestLinkRatio(t *testing.T) {
	t.Parallel()

	t.Run("all text in anchors yields 1.0", func(t *testing.T) {
		t.Parallel()

		sel := mainSelection(t, `<div role="main"><a href="x">All text</a></div>`)
		assert.Equal(t, 1.0, goquery.LinkRatio(sel))
	})

	t.Run("no anchors yields 0", func(t *testing.T) {
		t.Parallel()

		sel := mainSelection(t, `<div role="main"><p>Just prose here.</p></div>`)
		assert.Equal(t, 0.0, goquery.LinkRatio(sel))
	})

	t.Run("empty subtree yields 0", func(t *testing.T) {
		t.Parallel()

		sel := mainSelection(t, `<div role="main"></div>`)
		assert.Equal(t, 0.0, goquery.LinkRatio(sel))
	})

	t.Run("mixed content yields partial ratio", func(t *testing.T) {
		t.Parallel()

		// 4 runes of link text out of 8 total.
		sel := mainSelection(t, `<div role="main"><p>text</p><a href="x">link</a></div>`)
		assert.InDelta(t, 0.5, goquery.LinkRatio(sel), 1e-9)
	})

	t.Run("whitespace around text is trimmed before counting", func(t *testing.T) {
		t.Parallel()

		sel := mainSelection(t, `<div role="main">
	<p>  text  </p>
	<a href="x">  link  </a>
</div>`)
		assert.InDelta(t, 0.5, goquery.LinkRatio(sel), 1e-9)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		// 2 runes linked, 4 runes total, regardless of UTF-8 width.
		sel := mainSelection(t, `<div role="main"><p>日本</p><a href="x">語学</a></div>`)
		assert.InDelta(t, 0.5, goquery.LinkRatio(sel), 1e-9)
	})
}
