package seolens

import "context"

// DefaultDuplicateThreshold is the cosine similarity at or above which two
// pages are flagged as near-duplicates.
const DefaultDuplicateThreshold = 0.8

// DuplicatePair represents two pages flagged as near-duplicate content.
// Pairs are canonical: URLA sorts before URLB.
type DuplicatePair struct {
	AuditID    string  `json:"auditId"`
	URLA       string  `json:"urlA"`
	URLB       string  `json:"urlB"`
	Similarity float64 `json:"similarity"` // cosine similarity in [0, 1]
}

// DuplicateService persists near-duplicate pairs per audit.
type DuplicateService interface {
	// ReplaceDuplicates atomically replaces all pairs for an audit with the
	// result of a fresh sweep.
	ReplaceDuplicates(ctx context.Context, auditID string, pairs []DuplicatePair) error

	// FindDuplicatesByAudit retrieves all pairs for an audit, most similar
	// first.
	FindDuplicatesByAudit(ctx context.Context, auditID string) ([]DuplicatePair, error)

	// CountDuplicatesByAudit returns the number of pairs for an audit.
	CountDuplicatesByAudit(ctx context.Context, auditID string) (int, error)
}

// DuplicateDetector finds near-duplicate pairs within a page corpus.
type DuplicateDetector interface {
	// Detect returns all canonical pairs with similarity at or above the
	// detector's threshold. An empty or single-page corpus yields no pairs.
	Detect(pages []*Page) []DuplicatePair
}

// RelatedPage is an ad hoc similarity ranking result for a single
// analyzed URL against an audit's corpus.
type RelatedPage struct {
	URL        string       `json:"url"`
	Similarity float64      `json:"similarity"`
	WordCount  int          `json:"wordCount"`
	Quality    QualityLabel `json:"quality"`
}

// RelatedRanker ranks corpus pages by similarity to an ad hoc analyzed text.
type RelatedRanker interface {
	// Rank returns up to topN corpus pages related to the target text,
	// most similar first. The page at targetURL is excluded.
	Rank(targetURL, targetText string, corpus []*Page, topN int) []RelatedPage
}
