package sqlite_test

import (
	"context"
	"testing"

	"github.com/seolens/seolens"
	"github.com/seolens/seolens/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_CreateAudit(t *testing.T) {
	t.Parallel()

	t.Run("creates audit with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		audit := &seolens.Audit{
			Name:      "blog-audit",
			SourceURL: "https://example.com/blog",
		}

		err := svc.CreateAudit(ctx, audit)
		require.NoError(t, err)

		assert.NotEmpty(t, audit.ID, "ID should be generated")
		assert.False(t, audit.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, audit.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("returns error for invalid audit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		err := svc.CreateAudit(context.Background(), &seolens.Audit{})
		require.Error(t, err)
		assert.Equal(t, seolens.EINVALID, seolens.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateAudit(ctx, &seolens.Audit{Name: "same", SourceURL: "https://a.example"}))

		err := svc.CreateAudit(ctx, &seolens.Audit{Name: "same", SourceURL: "https://b.example"})
		require.Error(t, err)
		assert.Equal(t, seolens.ECONFLICT, seolens.ErrorCode(err))
	})
}

func TestAuditService_FindAuditByID(t *testing.T) {
	t.Parallel()

	t.Run("returns audit when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		audit := createTestAudit(t, db, "find-me")

		found, err := svc.FindAuditByID(context.Background(), audit.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.ID, found.ID)
		assert.Equal(t, "find-me", found.Name)
		assert.Equal(t, audit.SourceURL, found.SourceURL)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		_, err := svc.FindAuditByID(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, seolens.ENOTFOUND, seolens.ErrorCode(err))
	})
}

func TestAuditService_FindAudits(t *testing.T) {
	t.Parallel()

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		createTestAudit(t, db, "alpha")
		createTestAudit(t, db, "beta")

		name := "alpha"
		audits, err := svc.FindAudits(context.Background(), seolens.AuditFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, audits, 1)
		assert.Equal(t, "alpha", audits[0].Name)
	})

	t.Run("returns all audits with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		createTestAudit(t, db, "one")
		createTestAudit(t, db, "two")
		createTestAudit(t, db, "three")

		audits, err := svc.FindAudits(context.Background(), seolens.AuditFilter{})
		require.NoError(t, err)
		assert.Len(t, audits, 3)
	})
}

func TestAuditService_UpdateAudit(t *testing.T) {
	t.Parallel()

	t.Run("updates fields and bumps UpdatedAt", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		audit := createTestAudit(t, db, "before")

		newName := "after"
		newFilter := `/blog/`
		updated, err := svc.UpdateAudit(context.Background(), audit.ID, seolens.AuditUpdate{
			Name:   &newName,
			Filter: &newFilter,
		})
		require.NoError(t, err)
		assert.Equal(t, "after", updated.Name)
		assert.Equal(t, `/blog/`, updated.Filter)
		assert.False(t, updated.UpdatedAt.Before(audit.UpdatedAt))
	})

	t.Run("returns ENOTFOUND for missing audit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		name := "x"
		_, err := svc.UpdateAudit(context.Background(), "missing", seolens.AuditUpdate{Name: &name})
		require.Error(t, err)
		assert.Equal(t, seolens.ENOTFOUND, seolens.ErrorCode(err))
	})
}

func TestAuditService_DeleteAudit(t *testing.T) {
	t.Parallel()

	t.Run("deletes audit and cascades to pages", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		audits := sqlite.NewAuditService(db)
		pages := sqlite.NewPageService(db, 0)
		ctx := context.Background()

		audit := createTestAudit(t, db, "doomed")
		require.NoError(t, pages.CreatePage(ctx, &seolens.Page{
			AuditID:  audit.ID,
			URL:      "https://example.com/post",
			BodyText: "text",
		}))

		require.NoError(t, audits.DeleteAudit(ctx, audit.ID))

		remaining, err := pages.FindPages(ctx, seolens.PageFilter{AuditID: &audit.ID})
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for missing audit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		err := svc.DeleteAudit(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, seolens.ENOTFOUND, seolens.ErrorCode(err))
	})
}
