// Package slog decorates docview services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docview"
)

// Ensure LoggingFetcher implements docview.Fetcher.
var _ docview.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging of every payload fetch.
type LoggingFetcher struct {
	next   docview.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docview.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the payload path and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, path)
}
