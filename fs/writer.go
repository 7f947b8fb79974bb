package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitetext"
)

// Ensure Writer implements sitetext.DocumentWriter at compile time.
var _ sitetext.DocumentWriter = (*Writer)(nil)

// Writer writes extracted documents to a directory, mirroring the
// source tree layout with the configured file extension.
type Writer struct {
	baseDir     string
	root        string
	ext         string
	frontmatter bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithExtension sets the output file extension (default ".txt").
func WithExtension(ext string) WriterOption {
	return func(w *Writer) {
		w.ext = ext
	}
}

// WithFrontmatter prefixes each output file with YAML frontmatter
// carrying the document's source and title.
func WithFrontmatter() WriterOption {
	return func(w *Writer) {
		w.frontmatter = true
	}
}

// NewWriter creates a Writer that writes to baseDir. Output paths are
// the document sources made relative to root.
func NewWriter(baseDir, root string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir, root: root, ext: ".txt"}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SourceToPath converts a source file path to an output path relative
// to root, swapping the extension.
// Example: docs/api/users.html → docs/api/users.txt
func SourceToPath(source, root, ext string) (string, error) {
	rel, err := filepath.Rel(root, source)
	if err != nil {
		return "", sitetext.Errorf(sitetext.EINVALID, "source %q not under root %q", source, root)
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ext, nil
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *sitetext.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.Source)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Text)
	return b.String()
}

// CreateDocument writes a document to disk.
func (w *Writer) CreateDocument(ctx context.Context, doc *sitetext.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := SourceToPath(doc.Source, w.root, w.ext)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content := doc.Text
	if w.frontmatter {
		content = FormatDocument(doc)
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
