package mock

import (
	"context"

	"github.com/fwojciec/docview"
)

var _ docview.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of docview.Navigator.
type Navigator struct {
	HandleLinkFn      func(ctx context.Context, rawURI string) (bool, error)
	CurrentPageFn     func() docview.Item
	CurrentLocationFn func() docview.Location
}

func (n *Navigator) HandleLink(ctx context.Context, rawURI string) (bool, error) {
	return n.HandleLinkFn(ctx, rawURI)
}

func (n *Navigator) CurrentPage() docview.Item {
	return n.CurrentPageFn()
}

func (n *Navigator) CurrentLocation() docview.Location {
	return n.CurrentLocationFn()
}
