package mock

import (
	"context"

	"github.com/seolens/seolens"
)

var _ seolens.PageService = (*PageService)(nil)

// PageService is a mock implementation of seolens.PageService.
type PageService struct {
	CreatePageFn         func(ctx context.Context, page *seolens.Page) error
	FindPageByIDFn       func(ctx context.Context, id string) (*seolens.Page, error)
	FindPagesFn          func(ctx context.Context, filter seolens.PageFilter) ([]*seolens.Page, error)
	DeletePageFn         func(ctx context.Context, id string) error
	DeletePagesByAuditFn func(ctx context.Context, auditID string) error
	SummarizeAuditFn     func(ctx context.Context, auditID string) (*seolens.AuditSummary, error)
}

func (s *PageService) CreatePage(ctx context.Context, page *seolens.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*seolens.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPages(ctx context.Context, filter seolens.PageFilter) ([]*seolens.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}

func (s *PageService) DeletePagesByAudit(ctx context.Context, auditID string) error {
	return s.DeletePagesByAuditFn(ctx, auditID)
}

func (s *PageService) SummarizeAudit(ctx context.Context, auditID string) (*seolens.AuditSummary, error) {
	return s.SummarizeAuditFn(ctx, auditID)
}
