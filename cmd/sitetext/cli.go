package main

import (
	"context"
	"io"
)

// Dependencies holds shared state for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract plain text from a rendered documentation tree"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path string `arg:"" help:"Root directory of rendered HTML files"`

	Pattern      []string          `short:"p" default:"*.htm,*.html" help:"File glob patterns (repeatable)"`
	Encoding     string            `default:"utf-8" help:"Input text encoding (IANA name)"`
	Errors       string            `default:"strict" enum:"strict,replace,ignore" help:"Decode error policy"`
	Tag          string            `help:"Custom main-content selector tag (e.g. section)"`
	Attr         map[string]string `help:"Custom selector attributes (key=value, repeatable)"`
	ExcludeIndex bool              `help:"Skip link-dominated index pages"`
	Engine       string            `default:"native" enum:"native,trafilatura,readability" help:"Extraction engine"`
	Format       string            `default:"text" enum:"text,markdown" help:"Output format"`
	Out          string            `short:"o" help:"Output directory (default: write to stdout)"`
	Concurrency  int               `short:"c" default:"1" help:"Concurrent file processing limit"`
	Preview      bool              `help:"List matched files without extracting"`
	Verbose      bool              `short:"v" help:"Enable debug logging"`
}
