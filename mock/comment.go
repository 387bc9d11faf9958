package mock

import "github.com/fwojciec/docview"

var _ docview.CommentParser = (*CommentParser)(nil)

// CommentParser is a mock implementation of docview.CommentParser.
type CommentParser struct {
	PreviewFn    func(html string) string
	ReferencesFn func(html string) []string
}

func (p *CommentParser) Preview(html string) string {
	return p.PreviewFn(html)
}

func (p *CommentParser) References(html string) []string {
	return p.ReferencesFn(html)
}
