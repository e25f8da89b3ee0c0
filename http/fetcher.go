// Package http provides HTTP-based implementations of seolens.Fetcher and
// seolens.SitemapService.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/seolens/seolens"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// minContentBytes is the response size below which a page is treated as
// empty. Anti-bot interstitials and soft error pages are typically tiny.
const minContentBytes = 1000

// defaultUserAgent mimics a desktop browser; many sites serve automated
// clients a stub page or a block page.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Ensure Fetcher implements seolens.Fetcher at compile time.
var _ seolens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests with
// browser-like headers.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	minBytes  int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMinContentBytes overrides the empty-content threshold.
// Pass a negative value to disable the guard.
func WithMinContentBytes(n int) Option {
	return func(f *Fetcher) {
		f.minBytes = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
		minBytes:  minContentBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-200 responses and responses smaller than the empty-content threshold
// return EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", seolens.Errorf(seolens.EINVALID, "invalid URL %q: %v", url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", seolens.Errorf(seolens.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", seolens.Errorf(seolens.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", seolens.Errorf(seolens.EUNAVAILABLE, "read %s: %v", url, err)
	}

	if f.minBytes >= 0 && len(body) < f.minBytes {
		return "", seolens.Errorf(seolens.EUNAVAILABLE, "response from %s too small (%d bytes), likely blocked or empty", url, len(body))
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
