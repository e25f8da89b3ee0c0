package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/seolens/seolens"
	main "github.com/seolens/seolens/cmd/seolens"
	"github.com/seolens/seolens/crawl"
	"github.com/seolens/seolens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("preview prints discovered URLs without creating an audit", func(t *testing.T) {
		t.Parallel()

		created := false
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Audits: &mock.AuditService{
				CreateAuditFn: func(_ context.Context, _ *seolens.Audit) error {
					created = true
					return nil
				},
			},
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, baseURL string, _ *seolens.URLFilter) ([]string, error) {
					assert.Equal(t, "https://example.com", baseURL)
					return []string{"https://example.com/a", "https://example.com/b"}, nil
				},
			},
		}

		cmd := &main.AddCmd{Name: "blog", URL: "https://example.com", Preview: true}
		require.NoError(t, cmd.Run(deps))

		assert.False(t, created, "preview must not create the audit")
		assert.Contains(t, stdout.String(), "https://example.com/a")
		assert.Contains(t, stdout.String(), "https://example.com/b")
	})

	t.Run("preview uses feed discovery with --feed", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Feeds: &mock.FeedService{
				DiscoverURLsFn: func(_ context.Context, feedURL string, _ *seolens.URLFilter) ([]string, error) {
					assert.Equal(t, "https://example.com/feed.xml", feedURL)
					return []string{"https://example.com/post"}, nil
				},
			},
		}

		cmd := &main.AddCmd{Name: "blog", URL: "https://example.com/feed.xml", Feed: true, Preview: true}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "https://example.com/post")
	})

	t.Run("creates audit and runs the pipeline", func(t *testing.T) {
		t.Parallel()

		var createdAudit *seolens.Audit
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Audits: &mock.AuditService{
				CreateAuditFn: func(_ context.Context, audit *seolens.Audit) error {
					audit.ID = "audit-1"
					createdAudit = audit
					return nil
				},
			},
			Pipeline: &crawl.Pipeline{
				Sitemaps: &mock.SitemapService{
					DiscoverURLsFn: func(_ context.Context, _ string, _ *seolens.URLFilter) ([]string, error) {
						return nil, nil
					},
				},
			},
		}

		cmd := &main.AddCmd{Name: "blog", URL: "https://example.com", Filter: []string{`/blog/`}}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, createdAudit)
		assert.Equal(t, "blog", createdAudit.Name)
		assert.Equal(t, `/blog/`, createdAudit.Filter)
		assert.Contains(t, stdout.String(), "Added audit")
		assert.Contains(t, stdout.String(), "Saved 0 pages")
	})

	t.Run("rejects invalid filter patterns before any writes", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.AddCmd{Name: "blog", URL: "https://example.com", Filter: []string{`[invalid`}}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, seolens.EINVALID, seolens.ErrorCode(err))
	})
}
