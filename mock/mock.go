// Package mock provides function-field mock implementations of the
// sitetext domain interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/sitetext"
)

var _ sitetext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitetext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitetext.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitetext.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ sitetext.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitetext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ sitetext.Walker = (*Walker)(nil)

// Walker is a mock implementation of sitetext.Walker.
type Walker struct {
	WalkFn func(root string, pattern string) ([]string, error)
}

func (w *Walker) Walk(root string, pattern string) ([]string, error) {
	return w.WalkFn(root, pattern)
}

var _ sitetext.FileReader = (*FileReader)(nil)

// FileReader is a mock implementation of sitetext.FileReader.
type FileReader struct {
	ReadFileFn func(path string) (string, error)
}

func (r *FileReader) ReadFile(path string) (string, error) {
	return r.ReadFileFn(path)
}

var _ sitetext.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of sitetext.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *sitetext.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *sitetext.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}

var _ sitetext.Loader = (*Loader)(nil)

// Loader is a mock implementation of sitetext.Loader.
type Loader struct {
	LoadFn func(ctx context.Context) ([]*sitetext.Document, error)
}

func (l *Loader) Load(ctx context.Context) ([]*sitetext.Document, error) {
	return l.LoadFn(ctx)
}
