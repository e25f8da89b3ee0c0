// Package tfidf provides TF-IDF vectorization and cosine similarity for
// near-duplicate detection across a page corpus.
package tfidf

import (
	"math"
	"strings"
	"unicode"
)

// stopwords are excluded from vectorization; they carry no topical signal
// and would inflate similarity between unrelated pages.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"he": {}, "her": {}, "his": {}, "if": {}, "in": {}, "is": {}, "it": {},
	"its": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "our": {},
	"she": {}, "so": {}, "than": {}, "that": {}, "the": {}, "their": {},
	"them": {}, "then": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"to": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"which": {}, "who": {}, "will": {}, "with": {}, "you": {}, "your": {},
}

// Tokenize lowercases text and splits it into word tokens of two or more
// letters, with stopwords removed.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Vector is a sparse L2-normalized TF-IDF vector keyed by vocabulary index.
type Vector map[int]float64

// Vectorizer fits a TF-IDF model over a document corpus.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// Fit builds the vocabulary and smoothed IDF weights from the corpus and
// returns one normalized vector per document, in input order.
//
// IDF uses the smoothed form ln((1+N)/(1+df))+1 so terms present in every
// document still contribute a small weight.
func (v *Vectorizer) Fit(docs []string) []Vector {
	v.vocab = make(map[string]int)

	tokenized := make([][]string, len(docs))
	df := []int{}

	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens

		seen := map[int]struct{}{}
		for _, tok := range tokens {
			idx, ok := v.vocab[tok]
			if !ok {
				idx = len(v.vocab)
				v.vocab[tok] = idx
				df = append(df, 0)
			}
			if _, dup := seen[idx]; !dup {
				df[idx]++
				seen[idx] = struct{}{}
			}
		}
	}

	n := float64(len(docs))
	v.idf = make([]float64, len(df))
	for i, d := range df {
		v.idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, tokens := range tokenized {
		vectors[i] = v.vectorize(tokens)
	}
	return vectors
}

// vectorize converts tokens into a normalized TF-IDF vector using the
// fitted vocabulary. Unknown tokens are ignored.
func (v *Vectorizer) vectorize(tokens []string) Vector {
	if len(tokens) == 0 {
		return Vector{}
	}

	tf := make(map[int]float64)
	for _, tok := range tokens {
		if idx, ok := v.vocab[tok]; ok {
			tf[idx]++
		}
	}

	vec := make(Vector, len(tf))
	var norm float64
	for idx, count := range tf {
		w := (count / float64(len(tokens))) * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// Cosine returns the cosine similarity of two normalized vectors.
// Iterates the smaller vector for efficiency.
func Cosine(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		if w2, ok := b[idx]; ok {
			dot += w * w2
		}
	}
	// Guard against floating point drift above 1.0.
	if dot > 1 {
		dot = 1
	}
	return dot
}
