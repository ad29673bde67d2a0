package pagination

import "github.com/SscSPs/bookkeeping_app/internal/core/domain"

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// Normalize applies the defaults and clamps limit to [1, MaxLimit].
// Non-positive values fall back to the defaults.
func Normalize(page, limit int) domain.PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return domain.PageRequest{Page: page, Limit: limit}
}

// NewMeta computes the pagination block for a page of a result set holding total rows.
func NewMeta(req domain.PageRequest, total int) domain.Pagination {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return domain.Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}
}
