package seolens

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// Text is the main body text with whitespace normalized to single
	// spaces. Boilerplate (nav, footer, sidebar) has been removed where
	// the extractor can identify it.
	Text string
}

// Extractor extracts main content from HTML pages.
// Implementations fall back across progressively broader strategies so that
// pages without semantic markup still yield text.
type Extractor interface {
	// Extract processes raw HTML and returns the title and body text.
	// Returns EINVALID if no text can be extracted at all.
	Extract(html string) (*ExtractResult, error)
}
