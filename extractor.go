package sitetext

// Selector identifies an element by tag name and required attribute
// values. An element matches when its tag equals Tag and it carries
// every attribute key/value pair in Attrs.
type Selector struct {
	Tag   string
	Attrs map[string]string
}

// Validate returns an error if the selector contains invalid fields.
func (s *Selector) Validate() error {
	if s.Tag == "" {
		return Errorf(EINVALID, "selector tag required")
	}
	return nil
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title, if the page has one.
	Title string

	// Text is the main content as plain text with block structure
	// preserved as newlines. Empty when no main content was found or
	// the page was rejected as an index page.
	Text string

	// ContentHTML is the main-content subtree rendered back to HTML,
	// for downstream format conversion. Empty when no main content was
	// located or the page was rejected.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes a raw HTML page and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
