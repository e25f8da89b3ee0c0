// Package goquery provides CSS-selector-based content extraction.
// It mirrors the selector cascade content sites commonly respond to:
// semantic containers first, then paragraph text, then the whole document.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seolens/seolens"
)

// minCascadeChars is the extracted text length a cascade selector must
// produce to be accepted. Shorter hits are usually nav fragments.
const minCascadeChars = 200

// DefaultSelectors is the content selector cascade, tried in order.
func DefaultSelectors() []string {
	return []string{
		"article",
		"main",
		`[role="main"]`,
		".content",
		".post-content",
		".article-content",
		".entry-content",
		"section",
		".main-content",
	}
}

// Ensure Extractor implements seolens.Extractor at compile time.
var _ seolens.Extractor = (*Extractor)(nil)

// Extractor extracts the page title and main body text using a selector
// cascade with paragraph and whole-document fallbacks.
type Extractor struct {
	selectors []string
}

// NewExtractor creates an Extractor with the default selector cascade.
func NewExtractor() *Extractor {
	return &Extractor{selectors: DefaultSelectors()}
}

// NewExtractorWithSelectors creates an Extractor with a custom cascade.
// An empty list falls back to the defaults.
func NewExtractorWithSelectors(selectors []string) *Extractor {
	if len(selectors) == 0 {
		selectors = DefaultSelectors()
	}
	return &Extractor{selectors: selectors}
}

// Extract processes raw HTML and returns the title and normalized body text.
// Returns EINVALID if no text can be extracted at all.
func (e *Extractor) Extract(html string) (*seolens.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, seolens.Errorf(seolens.EINVALID, "failed to parse HTML: %v", err)
	}

	// Scripts and styles would otherwise leak into the whole-document
	// fallback text.
	doc.Find("script, style, noscript").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	text := e.cascadeText(doc)
	if text == "" {
		text = paragraphText(doc)
	}
	if text == "" {
		text = normalizeWhitespace(doc.Find("body").Text())
	}
	if text == "" {
		return nil, seolens.Errorf(seolens.EINVALID, "no text content extracted")
	}

	return &seolens.ExtractResult{
		Title: title,
		Text:  text,
	}, nil
}

// cascadeText tries each cascade selector in order and returns the first
// result long enough to be real content.
func (e *Extractor) cascadeText(doc *goquery.Document) string {
	for _, selector := range e.selectors {
		var parts []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if t := strings.TrimSpace(sel.Text()); t != "" {
				parts = append(parts, t)
			}
		})
		if len(parts) == 0 {
			continue
		}
		text := normalizeWhitespace(strings.Join(parts, " "))
		if len(text) > minCascadeChars {
			return text
		}
	}
	return ""
}

// paragraphText joins the text of all <p> elements.
func paragraphText(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return normalizeWhitespace(strings.Join(parts, " "))
}

// normalizeWhitespace collapses all whitespace runs to single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
