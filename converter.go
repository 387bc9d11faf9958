package docview

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML comment into Markdown for display in a
	// terminal. Empty input yields empty output.
	Convert(html string) (string, error)
}
