package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/seolens/seolens"
	"github.com/seolens/seolens/mock"
	seoslog "github.com/seolens/seolens/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with URL count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *seolens.URLFilter) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		svc := seoslog.NewLoggingSitemapService(inner, logger)
		urls, err := svc.DiscoverURLs(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *seolens.URLFilter) ([]string, error) {
				return nil, seolens.Errorf(seolens.EUNAVAILABLE, "sitemap unavailable")
			},
		}

		svc := seoslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.DiscoverURLs(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "sitemap unavailable")
	})
}

func TestLoggingFeedService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.FeedService{
		DiscoverURLsFn: func(_ context.Context, _ string, _ *seolens.URLFilter) ([]string, error) {
			return []string{"https://example.com/post"}, nil
		},
	}

	svc := seoslog.NewLoggingFeedService(inner, logger)
	urls, err := svc.DiscoverURLs(context.Background(), "https://example.com/feed.xml", nil)

	require.NoError(t, err)
	assert.Len(t, urls, 1)
	output := buf.String()
	assert.Contains(t, output, "feed discovery")
	assert.Contains(t, output, "count=1")
}
