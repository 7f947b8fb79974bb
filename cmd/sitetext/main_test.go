package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prints extracted text to stdout", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writePage(t, filepath.Join(root, "index.html"),
			`<html><head><title>Home</title></head><body><div role="main"><p>Hello</p><p>World</p></div></body></html>`)

		stdout, _, err := run(t, "extract", root)

		require.NoError(t, err)
		assert.Contains(t, stdout, "## Document: Home")
		assert.Contains(t, stdout, "Hello\nWorld")
	})

	t.Run("writes documents to output directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		out := t.TempDir()
		writePage(t, filepath.Join(root, "guide", "setup.html"),
			`<html><body><div role="main"><p>Install it.</p></div></body></html>`)

		stdout, _, err := run(t, "extract", root, "--out", out)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Wrote 1 documents")

		content, err := os.ReadFile(filepath.Join(out, "guide", "setup.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Install it.", string(content))
	})

	t.Run("preview lists matched files without extracting", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writePage(t, filepath.Join(root, "a.html"), "<html></html>")
		writePage(t, filepath.Join(root, "b.html"), "<html></html>")

		stdout, _, err := run(t, "extract", root, "--preview")

		require.NoError(t, err)
		assert.Contains(t, stdout, filepath.Join(root, "a.html"))
		assert.Contains(t, stdout, filepath.Join(root, "b.html"))
		assert.NotContains(t, stdout, "## Document")
	})

	t.Run("custom selector overrides defaults", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writePage(t, filepath.Join(root, "page.html"),
			`<html><body><div role="main"><p>Default</p></div><section class="main"><p>Custom</p></section></body></html>`)

		stdout, _, err := run(t, "extract", root, "--tag", "section", "--attr", "class=main")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Custom")
		assert.NotContains(t, stdout, "Default")
	})

	t.Run("unsupported encoding fails before loading", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "extract", t.TempDir(), "--encoding", "klingon-8")
		assert.Error(t, err)
	})

	t.Run("selector flags rejected for non-native engines", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "extract", t.TempDir(), "--engine", "readability", "--exclude-index")
		assert.Error(t, err)
	})
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), nil, &stdout, &stderr)

	assert.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "extract")
}
