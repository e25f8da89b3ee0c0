package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/seolens/seolens"
)

// Compile-time interface verification.
var _ seolens.AuditService = (*AuditService)(nil)

// AuditService implements seolens.AuditService using SQLite.
type AuditService struct {
	db *DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *DB) *AuditService {
	return &AuditService{db: db}
}

// CreateAudit creates a new audit.
func (s *AuditService) CreateAudit(ctx context.Context, audit *seolens.Audit) error {
	if err := audit.Validate(); err != nil {
		return err
	}

	audit.ID = uuid.New().String()
	audit.CreatedAt = time.Now().UTC()
	audit.UpdatedAt = audit.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audits (id, name, source_url, filter, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, audit.ID, audit.Name, audit.SourceURL, audit.Filter,
		audit.CreatedAt.Format(time.RFC3339), audit.UpdatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return seolens.Errorf(seolens.ECONFLICT, "audit %q already exists", audit.Name)
	}
	return err
}

// FindAuditByID retrieves an audit by ID.
func (s *AuditService) FindAuditByID(ctx context.Context, id string) (*seolens.Audit, error) {
	return s.findOne(ctx, "id = ?", id)
}

// FindAudits retrieves audits matching the filter.
func (s *AuditService) FindAudits(ctx context.Context, filter seolens.AuditFilter) ([]*seolens.Audit, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_url, filter, created_at, updated_at FROM audits WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var audits []*seolens.Audit
	for rows.Next() {
		audit, err := scanAudit(rows.Scan)
		if err != nil {
			return nil, err
		}
		audits = append(audits, audit)
	}

	return audits, rows.Err()
}

// UpdateAudit updates an existing audit.
func (s *AuditService) UpdateAudit(ctx context.Context, id string, upd seolens.AuditUpdate) (*seolens.Audit, error) {
	audit, err := s.FindAuditByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		audit.Name = *upd.Name
	}
	if upd.SourceURL != nil {
		audit.SourceURL = *upd.SourceURL
	}
	if upd.Filter != nil {
		audit.Filter = *upd.Filter
	}
	audit.UpdatedAt = time.Now().UTC()

	if err := audit.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE audits SET name = ?, source_url = ?, filter = ?, updated_at = ? WHERE id = ?
	`, audit.Name, audit.SourceURL, audit.Filter, audit.UpdatedAt.Format(time.RFC3339), id)

	if isUniqueViolation(err) {
		return nil, seolens.Errorf(seolens.ECONFLICT, "audit %q already exists", audit.Name)
	}
	if err != nil {
		return nil, err
	}

	return audit, nil
}

// DeleteAudit permanently removes an audit. Pages and duplicate pairs are
// removed by the foreign key cascade.
func (s *AuditService) DeleteAudit(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM audits WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return seolens.Errorf(seolens.ENOTFOUND, "audit not found")
	}
	return nil
}

func (s *AuditService) findOne(ctx context.Context, where string, args ...any) (*seolens.Audit, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, source_url, filter, created_at, updated_at FROM audits WHERE "+where, args...)

	audit, err := scanAudit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, seolens.Errorf(seolens.ENOTFOUND, "audit not found")
	}
	if err != nil {
		return nil, err
	}
	return audit, nil
}

// scanAudit reads one audit row via the given scan function.
func scanAudit(scan func(...any) error) (*seolens.Audit, error) {
	var audit seolens.Audit
	var createdAt, updatedAt string

	if err := scan(&audit.ID, &audit.Name, &audit.SourceURL, &audit.Filter, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if audit.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if audit.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &audit, nil
}
