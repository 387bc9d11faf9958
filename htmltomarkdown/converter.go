// Package htmltomarkdown renders HTML documentation comments as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docview"
)

// Ensure Converter implements docview.Converter at compile time.
var _ docview.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert comments to Markdown.
// Cross-reference links keep their "#address" targets unless LinkBase is
// set.
type Converter struct {
	conv *converter.Converter

	// LinkBase, if set, is the URL a hosted viewer runs at. "#address"
	// cross references become LinkBase + "#address".
	LinkBase string
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms comment HTML into Markdown without surrounding
// whitespace. Blank input converts to "".
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	if c.LinkBase != "" {
		html = strings.NewReplacer(
			`href="#`, `href="`+c.LinkBase+`#`,
			`href='#`, `href='`+c.LinkBase+`#`,
		).Replace(html)
	}
	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", docview.Errorf(docview.EMALFORMED, "failed to convert comment: %v", err)
	}
	return strings.TrimSpace(result), nil
}
