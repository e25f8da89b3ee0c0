package mock

import (
	"context"

	"github.com/seolens/seolens"
)

var _ seolens.DuplicateService = (*DuplicateService)(nil)

// DuplicateService is a mock implementation of seolens.DuplicateService.
type DuplicateService struct {
	ReplaceDuplicatesFn      func(ctx context.Context, auditID string, pairs []seolens.DuplicatePair) error
	FindDuplicatesByAuditFn  func(ctx context.Context, auditID string) ([]seolens.DuplicatePair, error)
	CountDuplicatesByAuditFn func(ctx context.Context, auditID string) (int, error)
}

func (s *DuplicateService) ReplaceDuplicates(ctx context.Context, auditID string, pairs []seolens.DuplicatePair) error {
	return s.ReplaceDuplicatesFn(ctx, auditID, pairs)
}

func (s *DuplicateService) FindDuplicatesByAudit(ctx context.Context, auditID string) ([]seolens.DuplicatePair, error) {
	return s.FindDuplicatesByAuditFn(ctx, auditID)
}

func (s *DuplicateService) CountDuplicatesByAudit(ctx context.Context, auditID string) (int, error) {
	return s.CountDuplicatesByAuditFn(ctx, auditID)
}

var _ seolens.DuplicateDetector = (*DuplicateDetector)(nil)

// DuplicateDetector is a mock implementation of seolens.DuplicateDetector.
type DuplicateDetector struct {
	DetectFn func(pages []*seolens.Page) []seolens.DuplicatePair
}

func (d *DuplicateDetector) Detect(pages []*seolens.Page) []seolens.DuplicatePair {
	return d.DetectFn(pages)
}

var _ seolens.RelatedRanker = (*RelatedRanker)(nil)

// RelatedRanker is a mock implementation of seolens.RelatedRanker.
type RelatedRanker struct {
	RankFn func(targetURL, targetText string, corpus []*seolens.Page, topN int) []seolens.RelatedPage
}

func (r *RelatedRanker) Rank(targetURL, targetText string, corpus []*seolens.Page, topN int) []seolens.RelatedPage {
	return r.RankFn(targetURL, targetText, corpus, topN)
}
