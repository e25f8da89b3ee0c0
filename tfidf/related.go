package tfidf

import (
	"regexp"
	"sort"
	"strings"

	"github.com/seolens/seolens"
)

// relatedCutoff is the combined score below which a corpus page is not
// considered related to the analyzed text.
const relatedCutoff = 0.3

// keywordRE matches words of four or more letters; shorter words are too
// common to signal topical overlap.
var keywordRE = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// Ensure Ranker implements seolens.RelatedRanker at compile time.
var _ seolens.RelatedRanker = (*Ranker)(nil)

// Ranker scores corpus pages against an ad hoc analyzed text using a blend
// of length similarity and keyword overlap. Unlike the batch Detector it
// needs no corpus-wide fit, so it stays cheap for single-URL analysis.
type Ranker struct{}

// NewRanker creates a new Ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank returns up to topN corpus pages related to the target text, most
// similar first. The combined score weighs word-count similarity at 0.6 and
// keyword Jaccard overlap at 0.4; scores at or below 0.3 are dropped.
// The page at targetURL is always excluded to avoid self-matches.
func (r *Ranker) Rank(targetURL, targetText string, corpus []*seolens.Page, topN int) []seolens.RelatedPage {
	if targetText == "" {
		return nil
	}
	if topN <= 0 {
		topN = 5
	}

	targetWC := len(strings.Fields(targetText))
	targetKeywords := keywordSet(targetText)

	var related []seolens.RelatedPage
	for _, page := range corpus {
		if page.URL == targetURL || page.BodyText == "" {
			continue
		}

		wc := page.Metrics.WordCount
		if wc == 0 {
			wc = len(strings.Fields(page.BodyText))
		}

		score := 0.6*lengthSimilarity(targetWC, wc) +
			0.4*jaccard(targetKeywords, keywordSet(page.BodyText))

		if score > relatedCutoff {
			related = append(related, seolens.RelatedPage{
				URL:        page.URL,
				Similarity: score,
				WordCount:  wc,
				Quality:    page.Quality,
			})
		}
	}

	sort.Slice(related, func(i, j int) bool {
		return related[i].Similarity > related[j].Similarity
	})
	if len(related) > topN {
		related = related[:topN]
	}
	return related
}

// lengthSimilarity maps the relative word count difference onto [0, 1].
func lengthSimilarity(a, b int) float64 {
	m := max(a, max(b, 1))
	d := a - b
	if d < 0 {
		d = -d
	}
	return 1 - float64(d)/float64(m)
}

func keywordSet(text string) map[string]struct{} {
	words := keywordRE.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// jaccard returns the intersection-over-union of the two sets, or 0 when
// either set is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var inter int
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
