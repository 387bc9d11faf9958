package mock

import "github.com/fwojciec/docview"

var _ docview.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of docview.Decoder.
type Decoder struct {
	DecodeFn func(raw string) (docview.Record, error)
}

func (d *Decoder) Decode(raw string) (docview.Record, error) {
	return d.DecodeFn(raw)
}
