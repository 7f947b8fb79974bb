package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitetext"
)

// Ensure LoggingLoader implements sitetext.Loader.
var _ sitetext.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with summary logging for load runs.
type LoggingLoader struct {
	next   sitetext.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next sitetext.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the outcome.
func (l *LoggingLoader) Load(ctx context.Context) ([]*sitetext.Document, error) {
	begin := time.Now()
	docs, err := l.next.Load(ctx)
	if err != nil {
		l.logger.Error("load failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	var empty int
	for _, doc := range docs {
		if doc.Text == "" {
			empty++
		}
	}
	l.logger.Info("load finished",
		"documents", len(docs),
		"empty", empty,
		"duration", time.Since(begin),
	)
	return docs, nil
}
