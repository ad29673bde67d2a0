package domain

import "time"

// AuditFields holds the row timestamps every persisted entity carries.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PageRequest is a 1-based page request. Use pagination.Normalize before handing it to a repository.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip for the page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}
