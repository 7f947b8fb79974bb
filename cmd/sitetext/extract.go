package main

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/sitetext"
	"github.com/fwojciec/sitetext/fs"
	"github.com/fwojciec/sitetext/goquery"
	"github.com/fwojciec/sitetext/htmltomarkdown"
	"github.com/fwojciec/sitetext/load"
	"github.com/fwojciec/sitetext/readability"
	stslog "github.com/fwojciec/sitetext/slog"
	"github.com/fwojciec/sitetext/trafilatura"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	walker := fs.NewWalker()

	// Preview mode: show matched files without extracting
	if c.Preview {
		for _, pattern := range c.Pattern {
			paths, err := walker.Walk(c.Path, pattern)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(deps.Stdout, path)
			}
		}
		return nil
	}

	reader, err := fs.NewReader(c.Encoding, fs.Policy(c.Errors))
	if err != nil {
		return err
	}

	extractor, err := c.buildExtractor()
	if err != nil {
		return err
	}

	var converter sitetext.Converter
	if c.Format == "markdown" {
		converter = htmltomarkdown.NewConverter()
	}

	var loader sitetext.Loader = &load.Loader{
		Root:        c.Path,
		Patterns:    c.Pattern,
		Walker:      walker,
		Reader:      reader,
		Extractor:   stslog.NewLoggingExtractor(extractor, logger),
		Converter:   converter,
		Concurrency: c.Concurrency,
	}
	loader = stslog.NewLoggingLoader(loader, logger)

	docs, err := loader.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitetext.ErrorMessage(err))
		return err
	}

	// Write to the output directory when configured, stdout otherwise
	if c.Out != "" {
		opts := []fs.WriterOption{}
		if c.Format == "markdown" {
			opts = append(opts, fs.WithExtension(".md"), fs.WithFrontmatter())
		}
		writer := fs.NewWriter(c.Out, c.Path, opts...)
		for _, doc := range docs {
			if err := writer.CreateDocument(deps.Ctx, doc); err != nil {
				return err
			}
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d documents to %s\n", len(docs), c.Out)
		return nil
	}

	fmt.Fprintln(deps.Stdout, sitetext.FormatDocuments(docs))
	return nil
}

// buildExtractor constructs the configured extraction engine. Selector
// and index-filter flags only make sense for the native engine.
func (c *ExtractCmd) buildExtractor() (sitetext.Extractor, error) {
	if c.Engine != "native" && (c.Tag != "" || len(c.Attr) > 0 || c.ExcludeIndex) {
		return nil, sitetext.Errorf(sitetext.ECONFIG,
			"--tag, --attr, and --exclude-index require the native engine")
	}

	switch c.Engine {
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	}

	if c.Tag == "" && len(c.Attr) > 0 {
		return nil, sitetext.Errorf(sitetext.ECONFIG, "--attr requires --tag")
	}

	var opts []goquery.Option
	if c.Tag != "" {
		opts = append(opts, goquery.WithCustomSelector(sitetext.Selector{
			Tag:   c.Tag,
			Attrs: c.Attr,
		}))
	}
	if c.ExcludeIndex {
		opts = append(opts, goquery.WithExcludeIndexPages())
	}
	return goquery.NewExtractor(opts...)
}
