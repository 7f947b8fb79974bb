// Package fs provides filesystem collaborators for the extraction
// pipeline: directory traversal, decoding file reads, and document
// output.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitetext"
)

// Ensure Walker implements sitetext.Walker at compile time.
var _ sitetext.Walker = (*Walker)(nil)

// Walker discovers files under a directory tree. Traversal is lexical,
// so results are deterministic for a fixed tree.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk returns every non-directory file under root whose base name
// matches the glob pattern, in lexical traversal order.
func (w *Walker) Walk(root string, pattern string) ([]string, error) {
	// Surface bad patterns before touching the filesystem.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, sitetext.Errorf(sitetext.EINVALID, "invalid pattern %q: %v", pattern, err)
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitetext.Errorf(sitetext.ENOTFOUND, "path %q does not exist", root)
		}
		return nil, err
	}
	return paths, nil
}
