package seolens

import "context"

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs the request and returns the response HTML.
	// The context controls timeout and cancellation.
	// Returns EUNAVAILABLE for blocked, empty, or non-200 responses.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
