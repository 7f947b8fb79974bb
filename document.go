package sitetext

import "context"

// Document represents the extracted text of one source HTML file.
// A document is never mutated after construction.
type Document struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	ContentHash string `json:"contentHash"`
	Position    int    `json:"position"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Source == "" {
		return Errorf(EINVALID, "document source required")
	}
	return nil
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// Loader produces documents from a configured source tree, in file
// discovery order.
type Loader interface {
	Load(ctx context.Context) ([]*Document, error)
}
