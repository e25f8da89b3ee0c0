package mock

import (
	"context"

	"github.com/seolens/seolens"
)

var _ seolens.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of seolens.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *seolens.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *seolens.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ seolens.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of seolens.FeedService.
type FeedService struct {
	DiscoverURLsFn func(ctx context.Context, feedURL string, filter *seolens.URLFilter) ([]string, error)
}

func (s *FeedService) DiscoverURLs(ctx context.Context, feedURL string, filter *seolens.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, feedURL, filter)
}
