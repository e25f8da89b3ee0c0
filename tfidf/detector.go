package tfidf

import (
	"sort"

	"github.com/seolens/seolens"
)

// Ensure Detector implements seolens.DuplicateDetector at compile time.
var _ seolens.DuplicateDetector = (*Detector)(nil)

// Detector finds near-duplicate page pairs via TF-IDF cosine similarity.
type Detector struct {
	threshold float64
}

// NewDetector creates a Detector with the given similarity threshold.
// A non-positive threshold falls back to seolens.DefaultDuplicateThreshold.
func NewDetector(threshold float64) *Detector {
	if threshold <= 0 {
		threshold = seolens.DefaultDuplicateThreshold
	}
	return &Detector{threshold: threshold}
}

// Detect returns all canonical near-duplicate pairs in the corpus.
// Pages with identical content hashes are exact duplicates (similarity 1.0)
// and skip vectorization. Results are sorted most similar first.
func (d *Detector) Detect(pages []*seolens.Page) []seolens.DuplicatePair {
	if len(pages) < 2 {
		return nil
	}

	docs := make([]string, len(pages))
	for i, p := range pages {
		docs[i] = p.BodyText
	}

	var v Vectorizer
	vectors := v.Fit(docs)

	var pairs []seolens.DuplicatePair
	for i := 0; i < len(pages); i++ {
		for j := i + 1; j < len(pages); j++ {
			if pages[i].URL == pages[j].URL {
				continue
			}

			var sim float64
			if pages[i].ContentHash != "" && pages[i].ContentHash == pages[j].ContentHash {
				sim = 1.0
			} else {
				sim = Cosine(vectors[i], vectors[j])
			}

			if sim >= d.threshold {
				pairs = append(pairs, canonicalPair(pages[i], pages[j], sim))
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Similarity != pairs[j].Similarity {
			return pairs[i].Similarity > pairs[j].Similarity
		}
		return pairs[i].URLA < pairs[j].URLA
	})
	return pairs
}

// canonicalPair orders the pair so URLA sorts before URLB.
func canonicalPair(a, b *seolens.Page, sim float64) seolens.DuplicatePair {
	urlA, urlB := a.URL, b.URL
	if urlB < urlA {
		urlA, urlB = urlB, urlA
	}
	return seolens.DuplicatePair{
		AuditID:    a.AuditID,
		URLA:       urlA,
		URLB:       urlB,
		Similarity: sim,
	}
}
