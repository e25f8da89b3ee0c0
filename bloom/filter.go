// Package bloom provides probabilistic URL set membership for crawl
// deduplication.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter tracks which URLs a crawl has already seen. Lookups may report
// false positives at the configured rate; false negatives cannot occur,
// so a seen URL is never fetched twice.
type Filter struct {
	set *bloom.BloomFilter
}

// NewFilter sizes the filter for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{set: bloom.NewWithEstimates(n, fpRate)}
}

// Add records a URL. URLs are canonicalized first, so variants that
// differ only in scheme or host case, or by fragment, map to the same
// entry.
func (f *Filter) Add(rawURL string) {
	f.set.AddString(Canonicalize(rawURL))
}

// Test reports whether the URL was probably added before.
func (f *Filter) Test(rawURL string) bool {
	return f.set.TestString(Canonicalize(rawURL))
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.set.ApproximatedSize())
}

// Canonicalize lowercases the scheme and host and drops the fragment.
// Strings that do not parse as URLs are returned unchanged.
func Canonicalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	return u.String()
}
