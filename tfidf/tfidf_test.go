package tfidf_test

import (
	"strings"
	"testing"

	"github.com/seolens/seolens"
	"github.com/seolens/seolens/tfidf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and drops stopwords and short tokens", func(t *testing.T) {
		t.Parallel()

		tokens := tfidf.Tokenize("The Quick Brown Fox is a fox!")
		assert.Equal(t, []string{"quick", "brown", "fox", "fox"}, tokens)
	})

	t.Run("empty text yields no tokens", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tfidf.Tokenize(""))
	})
}

func TestVectorizer_Fit(t *testing.T) {
	t.Parallel()

	t.Run("identical documents have cosine 1", func(t *testing.T) {
		t.Parallel()

		var v tfidf.Vectorizer
		vectors := v.Fit([]string{
			"content marketing strategy guide",
			"content marketing strategy guide",
		})

		require.Len(t, vectors, 2)
		assert.InDelta(t, 1.0, tfidf.Cosine(vectors[0], vectors[1]), 0.0001)
	})

	t.Run("disjoint documents have cosine 0", func(t *testing.T) {
		t.Parallel()

		var v tfidf.Vectorizer
		vectors := v.Fit([]string{
			"gardening tomatoes compost soil",
			"quantum computing qubits entanglement",
		})

		assert.Zero(t, tfidf.Cosine(vectors[0], vectors[1]))
	})

	t.Run("overlapping documents land between 0 and 1", func(t *testing.T) {
		t.Parallel()

		var v tfidf.Vectorizer
		vectors := v.Fit([]string{
			"seo content audit checklist tools",
			"seo content audit workflow tips",
			"gardening tomatoes compost soil",
		})

		sim := tfidf.Cosine(vectors[0], vectors[1])
		assert.Greater(t, sim, 0.0)
		assert.Less(t, sim, 1.0)
		assert.Greater(t, sim, tfidf.Cosine(vectors[0], vectors[2]))
	})

	t.Run("empty document yields empty vector", func(t *testing.T) {
		t.Parallel()

		var v tfidf.Vectorizer
		vectors := v.Fit([]string{"", "some real content here today"})

		assert.Empty(t, vectors[0])
		assert.Zero(t, tfidf.Cosine(vectors[0], vectors[1]))
	})
}

func page(auditID, url, text string) *seolens.Page {
	return &seolens.Page{
		AuditID:  auditID,
		URL:      url,
		BodyText: text,
		Metrics:  seolens.TextMetrics{WordCount: len(strings.Fields(text))},
	}
}

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("flags near-identical pages", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("seo content quality audit readability scoring pipeline ", 20)
		pages := []*seolens.Page{
			page("a1", "https://example.com/one", text),
			page("a1", "https://example.com/two", text+"extra trailing words"),
			page("a1", "https://example.com/three", strings.Repeat("gardening tomatoes compost soil watering schedule ", 20)),
		}

		d := tfidf.NewDetector(0.8)
		pairs := d.Detect(pages)

		require.Len(t, pairs, 1)
		assert.Equal(t, "https://example.com/one", pairs[0].URLA)
		assert.Equal(t, "https://example.com/two", pairs[0].URLB)
		assert.GreaterOrEqual(t, pairs[0].Similarity, 0.8)
	})

	t.Run("identical content hashes short-circuit to similarity 1", func(t *testing.T) {
		t.Parallel()

		a := page("a1", "https://example.com/a", "short text")
		b := page("a1", "https://example.com/b", "short text")
		a.ContentHash = "deadbeef"
		b.ContentHash = "deadbeef"

		d := tfidf.NewDetector(0.8)
		pairs := d.Detect([]*seolens.Page{a, b})

		require.Len(t, pairs, 1)
		assert.Equal(t, 1.0, pairs[0].Similarity)
	})

	t.Run("pairs are canonical regardless of input order", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("identical body text for canonical ordering checks ", 10)
		pages := []*seolens.Page{
			page("a1", "https://example.com/zz", text),
			page("a1", "https://example.com/aa", text),
		}

		d := tfidf.NewDetector(0.8)
		pairs := d.Detect(pages)

		require.Len(t, pairs, 1)
		assert.Less(t, pairs[0].URLA, pairs[0].URLB)
	})

	t.Run("single page corpus yields no pairs", func(t *testing.T) {
		t.Parallel()

		d := tfidf.NewDetector(0.8)
		assert.Nil(t, d.Detect([]*seolens.Page{page("a1", "https://example.com", "text")}))
	})
}

func TestRanker_Rank(t *testing.T) {
	t.Parallel()

	target := strings.Repeat("technology news article about artificial intelligence models ", 10)

	t.Run("excludes the target URL itself", func(t *testing.T) {
		t.Parallel()

		corpus := []*seolens.Page{
			page("a1", "https://example.com/self", target),
			page("a1", "https://example.com/other", target),
		}

		r := tfidf.NewRanker()
		related := r.Rank("https://example.com/self", target, corpus, 5)

		require.Len(t, related, 1)
		assert.Equal(t, "https://example.com/other", related[0].URL)
	})

	t.Run("drops weakly related pages", func(t *testing.T) {
		t.Parallel()

		corpus := []*seolens.Page{
			page("a1", "https://example.com/unrelated", "tiny gardening note"),
		}

		r := tfidf.NewRanker()
		assert.Empty(t, r.Rank("https://example.com/x", target, corpus, 5))
	})

	t.Run("caps results at topN, most similar first", func(t *testing.T) {
		t.Parallel()

		var corpus []*seolens.Page
		for i := 0; i < 10; i++ {
			corpus = append(corpus, page("a1", "https://example.com/p"+string(rune('a'+i)), target))
		}

		r := tfidf.NewRanker()
		related := r.Rank("https://example.com/x", target, corpus, 3)

		require.Len(t, related, 3)
		assert.GreaterOrEqual(t, related[0].Similarity, related[1].Similarity)
		assert.GreaterOrEqual(t, related[1].Similarity, related[2].Similarity)
	})

	t.Run("empty target text yields nothing", func(t *testing.T) {
		t.Parallel()

		r := tfidf.NewRanker()
		assert.Nil(t, r.Rank("https://example.com/x", "", nil, 5))
	})
}
