// Package quality assigns content quality labels from text metrics.
// The model is an explicit threshold classifier over word count, sentence
// count, and reading ease; thresholds are configurable per audit.
package quality

import "github.com/seolens/seolens"

// Ensure Classifier implements seolens.Classifier at compile time.
var _ seolens.Classifier = (*Classifier)(nil)

// Classifier labels pages low, medium, or high based on configured
// thresholds.
type Classifier struct {
	cfg seolens.QualityConfig
}

// NewClassifier creates a Classifier with the given thresholds.
// Zero-value fields fall back to the defaults from seolens.DefaultConfig.
// The low cutoff never drops below thinWordLimit, so a page counted as
// thin can never classify above low; a non-positive thinWordLimit uses
// seolens.DefaultThinWordLimit.
func NewClassifier(cfg seolens.QualityConfig, thinWordLimit int) *Classifier {
	def := seolens.DefaultConfig().Quality
	if cfg.HighMinWords <= 0 {
		cfg.HighMinWords = def.HighMinWords
	}
	if cfg.HighMinSentences <= 0 {
		cfg.HighMinSentences = def.HighMinSentences
	}
	if cfg.HighMinReadingEase <= 0 {
		cfg.HighMinReadingEase = def.HighMinReadingEase
	}
	if cfg.LowMaxWords <= 0 {
		cfg.LowMaxWords = def.LowMaxWords
	}
	if cfg.LowMaxReadingEase <= 0 {
		cfg.LowMaxReadingEase = def.LowMaxReadingEase
	}
	if thinWordLimit <= 0 {
		thinWordLimit = seolens.DefaultThinWordLimit
	}
	if cfg.LowMaxWords < thinWordLimit {
		cfg.LowMaxWords = thinWordLimit
	}
	return &Classifier{cfg: cfg}
}

// Classify returns the quality label for the given metrics.
// Thin pages are always low; a high label requires depth (words, sentences)
// and readable prose at the same time.
func (c *Classifier) Classify(m seolens.TextMetrics) seolens.QualityLabel {
	if m.WordCount < c.cfg.LowMaxWords || m.ReadingEase < c.cfg.LowMaxReadingEase {
		return seolens.QualityLow
	}
	if m.WordCount >= c.cfg.HighMinWords &&
		m.SentenceCount >= c.cfg.HighMinSentences &&
		m.ReadingEase >= c.cfg.HighMinReadingEase {
		return seolens.QualityHigh
	}
	return seolens.QualityMedium
}
