// Package textstat computes readability and depth metrics from plain text.
// It provides the Go counterpart of the word count, sentence count, and
// Flesch Reading Ease features used for quality scoring.
package textstat

import (
	"regexp"
	"strings"

	"github.com/seolens/seolens"
)

// minWordsForReadingEase is the word count below which the reading ease
// score is reported as 0. The formula is unstable on very short texts.
const minWordsForReadingEase = 10

var sentenceRE = regexp.MustCompile(`[.!?]+`)

// Ensure Analyzer implements seolens.TextAnalyzer at compile time.
var _ seolens.TextAnalyzer = (*Analyzer)(nil)

// Analyzer computes TextMetrics from normalized plain text.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes word count, sentence count, reading ease, and average
// sentence length for the given text.
func (a *Analyzer) Analyze(text string) seolens.TextMetrics {
	words := strings.Fields(text)
	wordCount := len(words)
	sentenceCount := len(sentenceRE.FindAllString(text, -1))

	var readingEase float64
	if wordCount > minWordsForReadingEase {
		readingEase = fleschReadingEase(words, sentenceCount)
	}

	avg := 0.0
	if wordCount > 0 {
		avg = float64(wordCount) / float64(max(sentenceCount, 1))
	}

	return seolens.TextMetrics{
		WordCount:      wordCount,
		SentenceCount:  sentenceCount,
		ReadingEase:    readingEase,
		AvgSentenceLen: avg,
	}
}

// fleschReadingEase computes the Flesch Reading Ease score:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// Higher scores mean easier text; standard English prose lands around 60-70.
func fleschReadingEase(words []string, sentences int) float64 {
	if len(words) == 0 {
		return 0
	}
	if sentences < 1 {
		sentences = 1
	}

	var syllables int
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))

	// The formula's theoretical range; clamp pathological inputs.
	if score > 121.22 {
		score = 121.22
	}
	if score < -100 {
		score = -100
	}
	return score
}

// countSyllables estimates syllables in a word by counting vowel groups,
// discounting a trailing silent "e". Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !isLetter(r)
	}))
	if word == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing e ("make", "close") unless it is the only vowel.
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
