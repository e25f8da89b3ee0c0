package seolens

import (
	"context"
	"time"
)

// Audit represents a named content audit of a site or URL set.
type Audit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SourceURL string    `json:"sourceUrl"`
	Filter    string    `json:"filter"` // newline-joined include regex patterns
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the audit contains invalid fields.
func (a *Audit) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "audit name required")
	}
	if a.SourceURL == "" {
		return Errorf(EINVALID, "audit source URL required")
	}
	return nil
}

// AuditService represents a service for managing audits.
type AuditService interface {
	// CreateAudit creates a new audit.
	CreateAudit(ctx context.Context, audit *Audit) error

	// FindAuditByID retrieves an audit by ID.
	// Returns ENOTFOUND if audit does not exist.
	FindAuditByID(ctx context.Context, id string) (*Audit, error)

	// FindAudits retrieves audits matching the filter.
	FindAudits(ctx context.Context, filter AuditFilter) ([]*Audit, error)

	// UpdateAudit updates an existing audit.
	// Returns ENOTFOUND if audit does not exist.
	UpdateAudit(ctx context.Context, id string, upd AuditUpdate) (*Audit, error)

	// DeleteAudit permanently removes an audit and all associated pages.
	// Returns ENOTFOUND if audit does not exist.
	DeleteAudit(ctx context.Context, id string) error
}

// AuditFilter represents a filter for FindAudits.
type AuditFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// AuditUpdate represents fields that can be updated on an audit.
type AuditUpdate struct {
	Name      *string `json:"name"`
	SourceURL *string `json:"sourceUrl"`
	Filter    *string `json:"filter"`
}

// AuditSummary aggregates audit-level statistics for reporting and the
// dashboard API.
type AuditSummary struct {
	AuditID        string         `json:"auditId"`
	Pages          int            `json:"pages"`
	AvgWords       float64        `json:"avgWords"`
	ThinPages      int            `json:"thinPages"`
	DuplicatePairs int            `json:"duplicatePairs"`
	Quality        map[string]int `json:"quality"` // label -> page count
}
