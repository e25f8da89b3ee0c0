// Package crawl provides audit crawling orchestration.
// It coordinates URL discovery, fetching, content extraction, text analysis,
// quality classification, and storage of audited pages.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/seolens/seolens"
	"golang.org/x/sync/errgroup"
)

// Frontier configuration for URL deduplication.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Pipeline orchestrates the crawling and analysis of audited sites.
type Pipeline struct {
	Sitemaps    seolens.SitemapService
	Feeds       seolens.FeedService
	Fetcher     seolens.Fetcher
	Extractors  []seolens.Extractor // tried in order until one yields text
	Analyzer    seolens.TextAnalyzer
	Classifier  seolens.Classifier
	Pages       seolens.PageService
	Duplicates  seolens.DuplicateService
	Detector    seolens.DuplicateDetector
	RateLimiter seolens.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Options controls URL discovery for a single run.
type Options struct {
	// Feed treats the audit's source URL as an RSS/Atom feed instead of a
	// site with a sitemap.
	Feed bool

	// URLs, if non-empty, is used directly and skips discovery.
	URLs []string
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved      int
	Failed     int
	Duplicates int
	Words      int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	position int
	url      string
	title    string
	text     string
	metrics  seolens.TextMetrics
	quality  seolens.QualityLabel
	err      error
}

// Discover resolves the URL set for an audit without fetching any pages.
// Explicit URLs take precedence over feed and sitemap discovery. The audit's
// stored filter patterns are applied and duplicates are removed.
func (p *Pipeline) Discover(ctx context.Context, audit *seolens.Audit, opts Options) ([]string, error) {
	filter, err := seolens.ParseURLFilter(strings.Split(audit.Filter, "\n"))
	if err != nil {
		return nil, err
	}

	var urls []string
	switch {
	case len(opts.URLs) > 0:
		for _, u := range opts.URLs {
			if filter.Match(u) {
				urls = append(urls, u)
			}
		}
	case opts.Feed:
		urls, err = p.Feeds.DiscoverURLs(ctx, audit.SourceURL, filter)
		if err != nil {
			return nil, fmt.Errorf("feed discovery: %w", err)
		}
	default:
		urls, err = p.Sitemaps.DiscoverURLs(ctx, audit.SourceURL, filter)
		if err != nil {
			return nil, fmt.Errorf("sitemap discovery: %w", err)
		}
	}

	// Fragments are stripped before queueing so the stored page URL
	// matches the deduplication key.
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	deduped := make([]string, 0, len(urls))
	for _, u := range urls {
		u = stripFragment(u)
		if frontier.Push(u) {
			deduped = append(deduped, u)
		}
	}
	return deduped, nil
}

// RunAudit crawls all pages for an audit and saves them.
// A failed URL never aborts the run; it is counted and reported via the
// progress callback. After all pages persist, a duplicate sweep runs over
// the audit's corpus and replaces any previously stored pairs.
func (p *Pipeline) RunAudit(ctx context.Context, audit *seolens.Audit, opts Options, progress ProgressFunc) (*Result, error) {
	urls, err := p.Discover(ctx, audit, opts)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan crawlResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				resultCh <- p.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in discovery order.
	results := make([]crawlResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			if result.err != nil {
				failedCount++
			}
			continue
		}
		if result.err != nil {
			failedCount++
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
				Error:     result.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	var savedCount int
	var totalWords int
	for _, result := range results {
		if result.err != nil {
			continue
		}

		page := &seolens.Page{
			AuditID:  audit.ID,
			URL:      result.url,
			Title:    result.title,
			BodyText: result.text,
			Metrics:  result.metrics,
			Quality:  result.quality,
		}
		if err := p.Pages.CreatePage(ctx, page); err != nil {
			failedCount++
			continue
		}
		savedCount++
		totalWords += result.metrics.WordCount
	}

	duplicates, err := p.sweepDuplicates(ctx, audit.ID)
	if err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:      savedCount,
		Failed:     failedCount,
		Duplicates: duplicates,
		Words:      totalWords,
	}, nil
}

// processURL fetches and analyzes a single URL.
func (p *Pipeline) processURL(ctx context.Context, position int, rawURL string) crawlResult {
	result := crawlResult{
		position: position,
		url:      rawURL,
	}

	if p.RateLimiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			result.err = seolens.Errorf(seolens.EINVALID, "invalid URL %q: %v", rawURL, err)
			return result
		}
		if err := p.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return p.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, fetchFn, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := p.extract(html)
	if err != nil {
		result.err = err
		return result
	}

	result.title = extracted.Title
	result.text = extracted.Text
	result.metrics = p.Analyzer.Analyze(extracted.Text)
	result.quality = p.Classifier.Classify(result.metrics)

	return result
}

// extract runs the extractor cascade, returning the first successful result.
func (p *Pipeline) extract(html string) (*seolens.ExtractResult, error) {
	var lastErr error
	for _, extractor := range p.Extractors {
		extracted, err := extractor.Extract(html)
		if err == nil {
			return extracted, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = seolens.Errorf(seolens.EINTERNAL, "no extractors configured")
	}
	return nil, lastErr
}

// sweepDuplicates detects near-duplicate pairs over the audit's stored
// corpus and replaces any pairs from a previous run.
func (p *Pipeline) sweepDuplicates(ctx context.Context, auditID string) (int, error) {
	if p.Detector == nil || p.Duplicates == nil {
		return 0, nil
	}

	pages, err := p.Pages.FindPages(ctx, seolens.PageFilter{AuditID: &auditID})
	if err != nil {
		return 0, fmt.Errorf("load corpus for duplicate sweep: %w", err)
	}

	pairs := p.Detector.Detect(pages)
	if err := p.Duplicates.ReplaceDuplicates(ctx, auditID, pairs); err != nil {
		return 0, fmt.Errorf("store duplicate pairs: %w", err)
	}
	return len(pairs), nil
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
