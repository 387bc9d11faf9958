// Package goquery inspects HTML documentation comments with goquery.
package goquery

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docview"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure CommentParser implements docview.CommentParser at compile time.
var _ docview.CommentParser = (*CommentParser)(nil)

// CommentParser extracts previews and cross references from comments.
type CommentParser struct{}

// NewCommentParser creates a new CommentParser.
func NewCommentParser() *CommentParser {
	return &CommentParser{}
}

// parseFragment parses comment HTML as the content of a div, so that text
// outside any element survives.
func parseFragment(comment string) (*goquery.Selection, bool) {
	div := &xhtml.Node{Type: xhtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := xhtml.ParseFragment(strings.NewReader(comment), div)
	if err != nil {
		return nil, false
	}
	for _, n := range nodes {
		div.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(div).Selection, true
}

// Preview returns the first non-empty paragraph of the comment. A comment
// without paragraphs is cut after its first sentence and escaped.
func (p *CommentParser) Preview(comment string) string {
	if strings.TrimSpace(comment) == "" {
		return ""
	}
	root, ok := parseFragment(comment)
	if !ok {
		return ""
	}

	var preview string
	root.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.Text()) == "" {
			return true
		}
		preview, _ = goquery.OuterHtml(sel)
		return false
	})
	if preview != "" {
		return preview
	}

	text := strings.Join(strings.Fields(root.Text()), " ")
	if i := strings.Index(text, ". "); i >= 0 {
		text = text[:i+1]
	}
	return html.EscapeString(text)
}

// References returns the distinct "#address" link targets of the comment
// without the leading "#", in document order.
func (p *CommentParser) References(comment string) []string {
	root, ok := parseFragment(comment)
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var refs []string
	root.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		address, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
		if !ok || address == "" || seen[address] {
			return
		}
		seen[address] = true
		refs = append(refs, address)
	})
	return refs
}
