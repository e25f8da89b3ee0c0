package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/seolens/seolens"
)

// Ensure LoggingSitemapService implements seolens.SitemapService.
var _ seolens.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   seolens.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next seolens.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *seolens.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}

// Ensure LoggingFeedService implements seolens.FeedService.
var _ seolens.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with debug logging.
type LoggingFeedService struct {
	next   seolens.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next seolens.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) DiscoverURLs(ctx context.Context, feedURL string, filter *seolens.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed discovery",
			"url", feedURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, feedURL, filter)
}
