package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/seolens/seolens"
	main "github.com/seolens/seolens/cmd/seolens"
	"github.com/seolens/seolens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Config: seolens.DefaultConfig(),
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html><body>content</body></html>", nil
			},
		},
		Extractors: []seolens.Extractor{
			&mock.Extractor{
				ExtractFn: func(_ string) (*seolens.ExtractResult, error) {
					return &seolens.ExtractResult{Title: "Post", Text: "body text"}, nil
				},
			},
		},
		Analyzer: &mock.TextAnalyzer{
			AnalyzeFn: func(_ string) seolens.TextMetrics {
				return seolens.TextMetrics{WordCount: 320, SentenceCount: 14, ReadingEase: 61.3}
			},
		},
		Classifier: &mock.Classifier{
			ClassifyFn: func(_ seolens.TextMetrics) seolens.QualityLabel {
				return seolens.QualityLow
			},
		},
	}
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints metrics and quality for a URL", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := analyzeDeps(stdout, &bytes.Buffer{})

		cmd := &main.AnalyzeCmd{URL: "https://example.com/post"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Post")
		assert.Contains(t, output, "320")
		assert.Contains(t, output, "61.3")
		assert.Contains(t, output, "low")
		assert.Contains(t, output, "Thin content:  yes")
	})

	t.Run("ranks related pages against an audit corpus", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := analyzeDeps(stdout, &bytes.Buffer{})
		deps.Audits = &mock.AuditService{
			FindAuditsFn: func(_ context.Context, _ seolens.AuditFilter) ([]*seolens.Audit, error) {
				return []*seolens.Audit{{ID: "audit-1", Name: "blog", SourceURL: "https://example.com"}}, nil
			},
		}
		deps.Pages = &mock.PageService{
			FindPagesFn: func(_ context.Context, filter seolens.PageFilter) ([]*seolens.Page, error) {
				require.NotNil(t, filter.AuditID)
				assert.Equal(t, "audit-1", *filter.AuditID)
				return []*seolens.Page{{URL: "https://example.com/other"}}, nil
			},
		}
		deps.Ranker = &mock.RelatedRanker{
			RankFn: func(targetURL, _ string, _ []*seolens.Page, topN int) []seolens.RelatedPage {
				assert.Equal(t, "https://example.com/post", targetURL)
				assert.Equal(t, deps.Config.RelatedTopN, topN)
				return []seolens.RelatedPage{{URL: "https://example.com/other", Similarity: 0.42}}
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/post", Audit: "blog"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Related pages")
		assert.Contains(t, output, "42%")
		assert.Contains(t, output, "https://example.com/other")
	})

	t.Run("returns fetch errors", func(t *testing.T) {
		t.Parallel()

		deps := analyzeDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", seolens.Errorf(seolens.EUNAVAILABLE, "upstream returned 503")
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/post"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, seolens.EUNAVAILABLE, seolens.ErrorCode(err))
	})
}
