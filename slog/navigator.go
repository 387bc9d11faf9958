package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docview"
)

// Ensure LoggingNavigator implements docview.Navigator.
var _ docview.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator with logging of every navigation.
type LoggingNavigator struct {
	next   docview.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next docview.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// HandleLink delegates to the wrapped navigator and logs where it landed.
func (n *LoggingNavigator) HandleLink(ctx context.Context, rawURI string) (ok bool, err error) {
	defer func(begin time.Time) {
		n.logger.Info("navigate",
			"uri", rawURI,
			"resolved", ok,
			"location", n.next.CurrentLocation().String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.HandleLink(ctx, rawURI)
}

// CurrentPage delegates to the wrapped navigator.
func (n *LoggingNavigator) CurrentPage() docview.Item {
	return n.next.CurrentPage()
}

// CurrentLocation delegates to the wrapped navigator.
func (n *LoggingNavigator) CurrentLocation() docview.Location {
	return n.next.CurrentLocation()
}
