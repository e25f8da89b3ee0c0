package seolens

// DefaultThinWordLimit is the word count below which a page is considered
// thin content.
const DefaultThinWordLimit = 500

// TextMetrics holds the readability and depth features computed for a page.
type TextMetrics struct {
	WordCount      int     `json:"wordCount"`
	SentenceCount  int     `json:"sentenceCount"`
	ReadingEase    float64 `json:"readingEase"` // Flesch Reading Ease
	AvgSentenceLen float64 `json:"avgSentenceLen"`
}

// Thin reports whether the metrics describe thin content, i.e. fewer than
// limit words. A non-positive limit falls back to DefaultThinWordLimit.
func (m TextMetrics) Thin(limit int) bool {
	if limit <= 0 {
		limit = DefaultThinWordLimit
	}
	return m.WordCount < limit
}

// TextAnalyzer computes TextMetrics from normalized plain text.
type TextAnalyzer interface {
	Analyze(text string) TextMetrics
}

// QualityLabel classifies a page's content quality.
type QualityLabel string

// Quality labels, ordered from worst to best.
const (
	QualityLow    QualityLabel = "low"
	QualityMedium QualityLabel = "medium"
	QualityHigh   QualityLabel = "high"
)

// Valid reports whether the label is one of the known quality labels.
func (q QualityLabel) Valid() bool {
	switch q {
	case QualityLow, QualityMedium, QualityHigh:
		return true
	}
	return false
}

// Classifier assigns a quality label to a page based on its metrics.
type Classifier interface {
	Classify(m TextMetrics) QualityLabel
}
