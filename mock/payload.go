package mock

import (
	"context"

	"github.com/fwojciec/docview"
)

var (
	_ docview.PayloadWriter = (*PayloadWriter)(nil)
	_ docview.PayloadLister = (*PayloadLister)(nil)
)

// PayloadWriter is a mock implementation of docview.PayloadWriter.
type PayloadWriter struct {
	PutPayloadFn func(ctx context.Context, p *docview.Payload) error
}

func (w *PayloadWriter) PutPayload(ctx context.Context, p *docview.Payload) error {
	return w.PutPayloadFn(ctx, p)
}

// PayloadLister is a mock implementation of docview.PayloadLister.
type PayloadLister struct {
	PathsFn func(ctx context.Context) ([]string, error)
}

func (l *PayloadLister) Paths(ctx context.Context) ([]string, error) {
	return l.PathsFn(ctx)
}
