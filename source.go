package sitetext

// Walker discovers files under a root directory. Implementations yield
// non-directory paths matching the pattern in a deterministic order.
type Walker interface {
	Walk(root string, pattern string) ([]string, error)
}

// FileReader reads a file and returns its contents as decoded text.
// Implementations hide encoding selection and decode-error policy.
type FileReader interface {
	ReadFile(path string) (string, error)
}
