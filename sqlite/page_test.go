package sqlite_test

import (
	"context"
	"strings"
	"testing"

	"github.com/seolens/seolens"
	"github.com/seolens/seolens/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage(auditID, url string, words int, quality seolens.QualityLabel) *seolens.Page {
	return &seolens.Page{
		AuditID:  auditID,
		URL:      url,
		Title:    "Title",
		BodyText: strings.Repeat("word ", words),
		Metrics: seolens.TextMetrics{
			WordCount:     words,
			SentenceCount: words / 15,
			ReadingEase:   55,
		},
		Quality: quality,
	}
}

func TestPageService_CreatePage(t *testing.T) {
	t.Parallel()

	t.Run("creates page with generated ID and content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		audit := createTestAudit(t, db, "audit")
		svc := sqlite.NewPageService(db, 0)
		ctx := context.Background()

		page := testPage(audit.ID, "https://example.com/post", 600, seolens.QualityMedium)
		require.NoError(t, svc.CreatePage(ctx, page))

		assert.NotEmpty(t, page.ID)
		assert.NotEmpty(t, page.ContentHash)
		assert.False(t, page.FetchedAt.IsZero())
	})

	t.Run("identical body text produces identical hashes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sqlite.HashContent("same text"), sqlite.HashContent("same text"))
		assert.NotEqual(t, sqlite.HashContent("same text"), sqlite.HashContent("other text"))
	})

	t.Run("returns ECONFLICT for duplicate URL within audit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		audit := createTestAudit(t, db, "audit")
		svc := sqlite.NewPageService(db, 0)
		ctx := context.Background()

		require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/post", 100, seolens.QualityLow)))

		err := svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/post", 100, seolens.QualityLow))
		require.Error(t, err)
		assert.Equal(t, seolens.ECONFLICT, seolens.ErrorCode(err))
	})

	t.Run("returns error for invalid page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db, 0)

		err := svc.CreatePage(context.Background(), &seolens.Page{})
		require.Error(t, err)
		assert.Equal(t, seolens.EINVALID, seolens.ErrorCode(err))
	})
}

func TestPageService_FindPages(t *testing.T) {
	t.Parallel()

	t.Run("filters by quality", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		audit := createTestAudit(t, db, "audit")
		svc := sqlite.NewPageService(db, 0)
		ctx := context.Background()

		require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/a", 2000, seolens.QualityHigh)))
		require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/b", 100, seolens.QualityLow)))

		q := seolens.QualityHigh
		pages, err := svc.FindPages(ctx, seolens.PageFilter{AuditID: &audit.ID, Quality: &q})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://example.com/a", pages[0].URL)
	})

	t.Run("filters thin pages", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		audit := createTestAudit(t, db, "audit")
		svc := sqlite.NewPageService(db, 500)
		ctx := context.Background()

		require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/thin", 200, seolens.QualityLow)))
		require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/deep", 1500, seolens.QualityHigh)))

		thin := true
		pages, err := svc.FindPages(ctx, seolens.PageFilter{AuditID: &audit.ID, Thin: &thin})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://example.com/thin", pages[0].URL)
	})

	t.Run("sorts by word count ascending", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		audit := createTestAudit(t, db, "audit")
		svc := sqlite.NewPageService(db, 0)
		ctx := context.Background()

		require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/big", 900, seolens.QualityMedium)))
		require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/small", 100, seolens.QualityLow)))

		pages, err := svc.FindPages(ctx, seolens.PageFilter{AuditID: &audit.ID, SortBy: seolens.SortByWordCount})
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "https://example.com/small", pages[0].URL)
	})

	t.Run("round-trips metrics", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		audit := createTestAudit(t, db, "audit")
		svc := sqlite.NewPageService(db, 0)
		ctx := context.Background()

		page := testPage(audit.ID, "https://example.com/post", 600, seolens.QualityMedium)
		page.Metrics.ReadingEase = 61.5
		page.Metrics.AvgSentenceLen = 17.2
		require.NoError(t, svc.CreatePage(ctx, page))

		found, err := svc.FindPageByID(ctx, page.ID)
		require.NoError(t, err)
		assert.Equal(t, page.Metrics, found.Metrics)
		assert.Equal(t, seolens.QualityMedium, found.Quality)
	})
}

func TestPageService_SummarizeAudit(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	audit := createTestAudit(t, db, "audit")
	pages := sqlite.NewPageService(db, 500)
	dups := sqlite.NewDuplicateService(db)
	ctx := context.Background()

	require.NoError(t, pages.CreatePage(ctx, testPage(audit.ID, "https://example.com/a", 200, seolens.QualityLow)))
	require.NoError(t, pages.CreatePage(ctx, testPage(audit.ID, "https://example.com/b", 1000, seolens.QualityMedium)))
	require.NoError(t, pages.CreatePage(ctx, testPage(audit.ID, "https://example.com/c", 1800, seolens.QualityHigh)))
	require.NoError(t, dups.ReplaceDuplicates(ctx, audit.ID, []seolens.DuplicatePair{
		{AuditID: audit.ID, URLA: "https://example.com/a", URLB: "https://example.com/b", Similarity: 0.91},
	}))

	summary, err := pages.SummarizeAudit(ctx, audit.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Pages)
	assert.Equal(t, 1, summary.ThinPages)
	assert.Equal(t, 1, summary.DuplicatePairs)
	assert.InDelta(t, 1000, summary.AvgWords, 0.1)
	assert.Equal(t, map[string]int{"low": 1, "medium": 1, "high": 1}, summary.Quality)
}

func TestPageService_DeletePagesByAudit(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	audit := createTestAudit(t, db, "audit")
	svc := sqlite.NewPageService(db, 0)
	ctx := context.Background()

	require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/a", 100, seolens.QualityLow)))
	require.NoError(t, svc.CreatePage(ctx, testPage(audit.ID, "https://example.com/b", 100, seolens.QualityLow)))

	require.NoError(t, svc.DeletePagesByAudit(ctx, audit.ID))

	remaining, err := svc.FindPages(ctx, seolens.PageFilter{AuditID: &audit.ID})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
