package seolens

import (
	"context"
	"time"
)

// Page represents an audited page with its extracted content and metrics.
type Page struct {
	ID          string       `json:"id"`
	AuditID     string       `json:"auditId"`
	URL         string       `json:"url"`
	Title       string       `json:"title"`
	BodyText    string       `json:"bodyText"` // whitespace-normalized plain text
	ContentHash string       `json:"contentHash"`
	Metrics     TextMetrics  `json:"metrics"`
	Quality     QualityLabel `json:"quality"`
	FetchedAt   time.Time    `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.AuditID == "" {
		return Errorf(EINVALID, "page audit ID required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageService represents a service for managing pages.
type PageService interface {
	// CreatePage creates a new page.
	// Returns ECONFLICT if the audit already contains the page's URL.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if page does not exist.
	FindPageByID(ctx context.Context, id string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePage permanently removes a page.
	// Returns ENOTFOUND if page does not exist.
	DeletePage(ctx context.Context, id string) error

	// DeletePagesByAudit removes all pages for an audit.
	DeletePagesByAudit(ctx context.Context, auditID string) error

	// SummarizeAudit aggregates page statistics for an audit.
	SummarizeAudit(ctx context.Context, auditID string) (*AuditSummary, error)
}

// SortOrder represents the sort order for page queries.
type SortOrder string

// SortOrder constants for PageFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByWordCount SortOrder = "word_count"
)

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID      *string       `json:"id"`
	AuditID *string       `json:"auditId"`
	URL     *string       `json:"url"`
	Quality *QualityLabel `json:"quality"`
	Thin    *bool         `json:"thin"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
