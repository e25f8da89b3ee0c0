// Package trafilatura provides boilerplate-removing content extraction.
// It backs up the selector cascade for pages whose markup defeats CSS
// selector heuristics.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/seolens/seolens"
)

// Ensure Extractor implements seolens.Extractor at compile time.
var _ seolens.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and normalized body text.
func (e *Extractor) Extract(rawHTML string) (*seolens.ExtractResult, error) {
	if rawHTML == "" {
		return nil, seolens.Errorf(seolens.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, seolens.Errorf(seolens.EINVALID, "content extraction failed: %v", err)
	}

	text := strings.Join(strings.Fields(result.ContentText), " ")
	if text == "" {
		return nil, seolens.Errorf(seolens.EINVALID, "no text content extracted")
	}

	return &seolens.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}
