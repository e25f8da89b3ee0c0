package mock

import "github.com/seolens/seolens"

var _ seolens.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of seolens.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*seolens.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*seolens.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ seolens.TextAnalyzer = (*TextAnalyzer)(nil)

// TextAnalyzer is a mock implementation of seolens.TextAnalyzer.
type TextAnalyzer struct {
	AnalyzeFn func(text string) seolens.TextMetrics
}

func (a *TextAnalyzer) Analyze(text string) seolens.TextMetrics {
	return a.AnalyzeFn(text)
}

var _ seolens.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of seolens.Classifier.
type Classifier struct {
	ClassifyFn func(m seolens.TextMetrics) seolens.QualityLabel
}

func (c *Classifier) Classify(m seolens.TextMetrics) seolens.QualityLabel {
	return c.ClassifyFn(m)
}
