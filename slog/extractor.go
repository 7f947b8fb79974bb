// Package slog provides log/slog-based logging decorators for the
// sitetext domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitetext"
)

// Ensure LoggingExtractor implements sitetext.Extractor.
var _ sitetext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-page debug logging.
type LoggingExtractor struct {
	next   sitetext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitetext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*sitetext.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("content extraction failed",
			"input_bytes", len(html),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Debug("content extraction",
		"input_bytes", len(html),
		"text_bytes", len(result.Text),
		"title", result.Title,
		"duration", time.Since(begin),
	)
	return result, nil
}
