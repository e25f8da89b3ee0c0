package sqlite

import (
	"context"

	"github.com/seolens/seolens"
)

// Compile-time interface verification.
var _ seolens.DuplicateService = (*DuplicateService)(nil)

// DuplicateService implements seolens.DuplicateService using SQLite.
type DuplicateService struct {
	db *DB
}

// NewDuplicateService creates a new DuplicateService.
func NewDuplicateService(db *DB) *DuplicateService {
	return &DuplicateService{db: db}
}

// ReplaceDuplicates atomically replaces all pairs for an audit with the
// result of a fresh sweep.
func (s *DuplicateService) ReplaceDuplicates(ctx context.Context, auditID string, pairs []seolens.DuplicatePair) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM duplicate_pairs WHERE audit_id = ?", auditID); err != nil {
		return err
	}

	for _, pair := range pairs {
		if pair.URLA >= pair.URLB {
			return seolens.Errorf(seolens.EINVALID, "duplicate pair not canonical: %s >= %s", pair.URLA, pair.URLB)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO duplicate_pairs (audit_id, url_a, url_b, similarity)
			VALUES (?, ?, ?, ?)
		`, auditID, pair.URLA, pair.URLB, pair.Similarity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindDuplicatesByAudit retrieves all pairs for an audit, most similar first.
func (s *DuplicateService) FindDuplicatesByAudit(ctx context.Context, auditID string) ([]seolens.DuplicatePair, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT audit_id, url_a, url_b, similarity
		FROM duplicate_pairs
		WHERE audit_id = ?
		ORDER BY similarity DESC, url_a ASC
	`, auditID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []seolens.DuplicatePair
	for rows.Next() {
		var pair seolens.DuplicatePair
		if err := rows.Scan(&pair.AuditID, &pair.URLA, &pair.URLB, &pair.Similarity); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	return pairs, rows.Err()
}

// CountDuplicatesByAudit returns the number of pairs for an audit.
func (s *DuplicateService) CountDuplicatesByAudit(ctx context.Context, auditID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM duplicate_pairs WHERE audit_id = ?", auditID,
	).Scan(&count)
	return count, err
}
