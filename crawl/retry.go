package crawl

import (
	"context"
	"time"
)

// FetchFunc fetches a URL and returns its raw HTML.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives printf-style progress messages.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff schedule used for transient
// fetch failures: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches a URL, retrying on failure with the default
// backoff schedule. The logger, if non-nil, is told about each retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is FetchWithRetry with an explicit backoff
// schedule. One retry is made per delay, so the total attempt count is
// len(delays)+1. Tests pass zero delays to avoid real waiting.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	if err == nil {
		return html, nil
	}

	for i, delay := range delays {
		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, i+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}

		html, err = fetch(ctx, url)
		if err == nil {
			return html, nil
		}
	}

	return "", err
}
