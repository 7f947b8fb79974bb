package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitetext"
	"github.com/fwojciec/sitetext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceToPath(t *testing.T) {
	t.Parallel()

	t.Run("mirrors relative path and swaps extension", func(t *testing.T) {
		t.Parallel()

		got, err := fs.SourceToPath(
			filepath.Join("docs", "api", "users.html"), "docs", ".txt")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("api", "users.txt"), got)
	})
}

func TestWriter_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes plain text mirroring the source tree", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		out := t.TempDir()
		w := fs.NewWriter(out, root)

		doc := &sitetext.Document{
			Source: filepath.Join(root, "guide", "intro.html"),
			Text:   "Hello\nWorld",
		}
		require.NoError(t, w.CreateDocument(context.Background(), doc))

		content, err := os.ReadFile(filepath.Join(out, "guide", "intro.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Hello\nWorld", string(content))
	})

	t.Run("frontmatter and extension options", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		out := t.TempDir()
		w := fs.NewWriter(out, root, fs.WithExtension(".md"), fs.WithFrontmatter())

		doc := &sitetext.Document{
			Source: filepath.Join(root, "intro.html"),
			Title:  "Intro",
			Text:   "# Hello",
		}
		require.NoError(t, w.CreateDocument(context.Background(), doc))

		content, err := os.ReadFile(filepath.Join(out, "intro.md"))
		require.NoError(t, err)
		assert.Equal(t, "---\nsource: "+doc.Source+"\ntitle: Intro\n---\n\n# Hello", string(content))
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir(), t.TempDir())
		err := w.CreateDocument(context.Background(), &sitetext.Document{Text: "x"})
		assert.Equal(t, sitetext.EINVALID, sitetext.ErrorCode(err))
	})
}
