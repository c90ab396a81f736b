package ao3

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as a work summary,
	// into Markdown.
	Convert(html string) (string, error)
}
