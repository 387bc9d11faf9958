package docview

// CommentParser inspects documentation comments, which are HTML fragments.
type CommentParser interface {
	// Preview returns the first sentence or paragraph of the comment as
	// HTML, or "" if the comment has no text.
	Preview(html string) string

	// References returns the addresses of cross-reference links in the
	// comment, in document order. Only links of the form "#address" count.
	References(html string) []string
}
