package mock

import (
	"context"

	"github.com/seolens/seolens"
)

var _ seolens.AuditService = (*AuditService)(nil)

// AuditService is a mock implementation of seolens.AuditService.
type AuditService struct {
	CreateAuditFn   func(ctx context.Context, audit *seolens.Audit) error
	FindAuditByIDFn func(ctx context.Context, id string) (*seolens.Audit, error)
	FindAuditsFn    func(ctx context.Context, filter seolens.AuditFilter) ([]*seolens.Audit, error)
	UpdateAuditFn   func(ctx context.Context, id string, upd seolens.AuditUpdate) (*seolens.Audit, error)
	DeleteAuditFn   func(ctx context.Context, id string) error
}

func (s *AuditService) CreateAudit(ctx context.Context, audit *seolens.Audit) error {
	return s.CreateAuditFn(ctx, audit)
}

func (s *AuditService) FindAuditByID(ctx context.Context, id string) (*seolens.Audit, error) {
	return s.FindAuditByIDFn(ctx, id)
}

func (s *AuditService) FindAudits(ctx context.Context, filter seolens.AuditFilter) ([]*seolens.Audit, error) {
	return s.FindAuditsFn(ctx, filter)
}

func (s *AuditService) UpdateAudit(ctx context.Context, id string, upd seolens.AuditUpdate) (*seolens.Audit, error) {
	return s.UpdateAuditFn(ctx, id, upd)
}

func (s *AuditService) DeleteAudit(ctx context.Context, id string) error {
	return s.DeleteAuditFn(ctx, id)
}
