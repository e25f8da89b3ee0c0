package seolens

// Config holds tunable pipeline settings. Zero values are replaced with
// defaults by DefaultConfig-derived loading, so a partial config file is
// always valid.
type Config struct {
	// ThinWordLimit is the word count below which a page is thin content.
	ThinWordLimit int `yaml:"thin_word_limit"`

	// DuplicateThreshold is the cosine similarity cutoff for the batch
	// near-duplicate sweep.
	DuplicateThreshold float64 `yaml:"duplicate_threshold"`

	// RelatedTopN bounds ad hoc related-page rankings.
	RelatedTopN int `yaml:"related_top_n"`

	// Concurrency is the number of pages fetched in parallel.
	Concurrency int `yaml:"concurrency"`

	// RequestsPerSecond limits fetches per domain.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Quality holds classifier thresholds.
	Quality QualityConfig `yaml:"quality"`

	// Selectors overrides the content extraction selector cascade.
	Selectors []string `yaml:"selectors"`
}

// QualityConfig holds the threshold model for quality classification.
type QualityConfig struct {
	// HighMinWords, HighMinSentences and HighMinReadingEase must all be
	// met for a high label.
	HighMinWords       int     `yaml:"high_min_words"`
	HighMinSentences   int     `yaml:"high_min_sentences"`
	HighMinReadingEase float64 `yaml:"high_min_reading_ease"`

	// LowMaxWords or LowMaxReadingEase triggers a low label.
	LowMaxWords       int     `yaml:"low_max_words"`
	LowMaxReadingEase float64 `yaml:"low_max_reading_ease"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ThinWordLimit:      DefaultThinWordLimit,
		DuplicateThreshold: DefaultDuplicateThreshold,
		RelatedTopN:        5,
		Concurrency:        4,
		RequestsPerSecond:  1.0,
		Quality: QualityConfig{
			HighMinWords:       1200,
			HighMinSentences:   30,
			HighMinReadingEase: 40,
			LowMaxWords:        DefaultThinWordLimit,
			LowMaxReadingEase:  15,
		},
	}
}
