// Package gofeed discovers audit URLs from RSS and Atom feeds.
// Blog and news audits usually have a feed that lists exactly the content
// pages worth scoring, which makes it a better source than a full sitemap.
package gofeed

import (
	"context"

	"github.com/mmcdole/gofeed"
	"github.com/seolens/seolens"
)

// Ensure FeedService implements seolens.FeedService at compile time.
var _ seolens.FeedService = (*FeedService)(nil)

// FeedService discovers article URLs from RSS/Atom feeds.
type FeedService struct {
	parser *gofeed.Parser
}

// NewFeedService creates a new FeedService.
func NewFeedService() *FeedService {
	return &FeedService{parser: gofeed.NewParser()}
}

// DiscoverURLs returns the item links of the feed at feedURL in feed order,
// deduplicated and filtered by the optional filter.
func (s *FeedService) DiscoverURLs(ctx context.Context, feedURL string, filter *seolens.URLFilter) ([]string, error) {
	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, seolens.Errorf(seolens.EUNAVAILABLE, "failed to parse feed %s: %v", feedURL, err)
	}

	seen := make(map[string]bool)
	urls := []string{}
	for _, item := range feed.Items {
		if item.Link == "" || seen[item.Link] {
			continue
		}
		if !filter.Match(item.Link) {
			continue
		}
		seen[item.Link] = true
		urls = append(urls, item.Link)
	}

	return urls, nil
}
