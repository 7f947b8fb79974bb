package sitetext

import "strings"

// FormatDocuments formats documents for terminal output. Each document
// gets a header naming its title, or its source when the title is
// empty; documents are separated by blank lines.
func FormatDocuments(docs []*Document) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		name := doc.Title
		if name == "" {
			name = doc.Source
		}
		parts = append(parts, "## Document: "+name+"\n"+doc.Text)
	}
	return strings.Join(parts, "\n\n")
}
