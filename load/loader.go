// Package load provides extraction pipeline orchestration. It
// coordinates file discovery, decoding reads, content extraction, and
// optional format conversion into an ordered sequence of documents.
package load

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitetext"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultPatterns match the files a static-site generator renders.
var DefaultPatterns = []string{"*.htm", "*.html"}

// Ensure Loader implements sitetext.Loader at compile time.
var _ sitetext.Loader = (*Loader)(nil)

// Loader runs the extraction pipeline over a directory tree. Files are
// discovered per pattern in walker order; documents come out in the
// same order. A read, decode, or extraction failure aborts the whole
// load rather than silently dropping pages, since a dropped page can
// hide a systemic encoding misconfiguration.
type Loader struct {
	Root      string
	Patterns  []string
	Walker    sitetext.Walker
	Reader    sitetext.FileReader
	Extractor sitetext.Extractor

	// Converter, when set, converts the located content subtree to
	// Markdown instead of emitting plain text.
	Converter sitetext.Converter

	// Concurrency bounds parallel file processing. Values below 2 mean
	// sequential processing. Output order is unaffected.
	Concurrency int
}

// Load processes every matched file and returns one document per file,
// in discovery order.
func (l *Loader) Load(ctx context.Context) ([]*sitetext.Document, error) {
	patterns := l.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	var paths []string
	for _, pattern := range patterns {
		matched, err := l.Walker.Walk(l.Root, pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matched...)
	}

	concurrency := l.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Results are placed by position so document order always equals
	// discovery order, regardless of concurrency.
	docs := make([]*sitetext.Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := l.processFile(i, path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

// processFile reads, extracts, and packages a single file.
func (l *Loader) processFile(position int, path string) (*sitetext.Document, error) {
	raw, err := l.Reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	result, err := l.Extractor.Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extracting %q: %w", path, err)
	}

	text := result.Text
	if l.Converter != nil {
		text = ""
		if result.ContentHTML != "" {
			text, err = l.Converter.Convert(result.ContentHTML)
			if err != nil {
				return nil, fmt.Errorf("converting %q: %w", path, err)
			}
		}
	}

	return &sitetext.Document{
		ID:          uuid.NewString(),
		Source:      path,
		Title:       result.Title,
		Text:        text,
		ContentHash: computeHash(text),
		Position:    position,
	}, nil
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
