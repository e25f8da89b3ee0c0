package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/seolens/seolens"
)

// Compile-time interface verification.
var _ seolens.PageService = (*PageService)(nil)

// PageService implements seolens.PageService using SQLite.
type PageService struct {
	db        *DB
	thinLimit int
}

// NewPageService creates a new PageService. thinLimit is the word count
// below which a page counts as thin; non-positive values use the default.
func NewPageService(db *DB, thinLimit int) *PageService {
	if thinLimit <= 0 {
		thinLimit = seolens.DefaultThinWordLimit
	}
	return &PageService{db: db, thinLimit: thinLimit}
}

// HashContent computes the xxHash of body text and returns it as hex.
// Pages with equal hashes are byte-identical content.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

const pageColumns = "id, audit_id, url, title, body_text, content_hash, word_count, sentence_count, reading_ease, avg_sentence_len, quality, fetched_at"

// CreatePage creates a new page.
func (s *PageService) CreatePage(ctx context.Context, page *seolens.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.ContentHash = HashContent(page.BodyText)
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (`+pageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.AuditID, page.URL, page.Title, page.BodyText, page.ContentHash,
		page.Metrics.WordCount, page.Metrics.SentenceCount, page.Metrics.ReadingEase,
		page.Metrics.AvgSentenceLen, string(page.Quality), page.FetchedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return seolens.Errorf(seolens.ECONFLICT, "page %s already exists in audit", page.URL)
	}
	return err
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*seolens.Page, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE id = ?", id)

	page, err := scanPage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, seolens.Errorf(seolens.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FindPages retrieves pages matching the filter.
func (s *PageService) FindPages(ctx context.Context, filter seolens.PageFilter) ([]*seolens.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + pageColumns + " FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.AuditID != nil {
		query.WriteString(" AND audit_id = ?")
		args = append(args, *filter.AuditID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Quality != nil {
		query.WriteString(" AND quality = ?")
		args = append(args, string(*filter.Quality))
	}
	if filter.Thin != nil {
		if *filter.Thin {
			query.WriteString(" AND word_count < ?")
		} else {
			query.WriteString(" AND word_count >= ?")
		}
		args = append(args, s.thinLimit)
	}

	switch filter.SortBy {
	case seolens.SortByWordCount:
		query.WriteString(" ORDER BY word_count ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*seolens.Page
	for rows.Next() {
		page, err := scanPage(rows.Scan)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

// DeletePage permanently removes a page.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return seolens.Errorf(seolens.ENOTFOUND, "page not found")
	}
	return nil
}

// DeletePagesByAudit removes all pages for an audit.
func (s *PageService) DeletePagesByAudit(ctx context.Context, auditID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE audit_id = ?", auditID)
	return err
}

// SummarizeAudit aggregates page statistics for an audit.
func (s *PageService) SummarizeAudit(ctx context.Context, auditID string) (*seolens.AuditSummary, error) {
	summary := &seolens.AuditSummary{
		AuditID: auditID,
		Quality: make(map[string]int),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(word_count), 0),
		       COALESCE(SUM(CASE WHEN word_count < ? THEN 1 ELSE 0 END), 0)
		FROM pages WHERE audit_id = ?
	`, s.thinLimit, auditID).Scan(&summary.Pages, &summary.AvgWords, &summary.ThinPages)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT quality, COUNT(*) FROM pages WHERE audit_id = ? GROUP BY quality
	`, auditID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		summary.Quality[label] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM duplicate_pairs WHERE audit_id = ?", auditID,
	).Scan(&summary.DuplicatePairs)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// scanPage reads one page row via the given scan function.
func scanPage(scan func(...any) error) (*seolens.Page, error) {
	var page seolens.Page
	var quality, fetchedAt string

	if err := scan(&page.ID, &page.AuditID, &page.URL, &page.Title, &page.BodyText,
		&page.ContentHash, &page.Metrics.WordCount, &page.Metrics.SentenceCount,
		&page.Metrics.ReadingEase, &page.Metrics.AvgSentenceLen, &quality, &fetchedAt); err != nil {
		return nil, err
	}

	page.Quality = seolens.QualityLabel(quality)

	var err error
	if page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &page, nil
}
