package pagination

import (
	"testing"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
	}{
		{"defaults", 0, 0, 1, 50},
		{"negative values", -3, -10, 1, 50},
		{"in range", 3, 20, 3, 20},
		{"limit clamped to max", 2, 500, 2, 100},
		{"limit of one", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(domain.PageRequest{Page: 2, Limit: 10}, 25)
	assert.Equal(t, domain.Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: true}, meta)

	last := NewMeta(domain.PageRequest{Page: 3, Limit: 10}, 25)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := NewMeta(domain.PageRequest{Page: 1, Limit: 50}, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestPagesCoverTotalExactlyOnce(t *testing.T) {
	total := 137
	req := Normalize(1, 25)
	meta := NewMeta(req, total)

	seen := 0
	for p := 1; p <= meta.TotalPages; p++ {
		page := domain.PageRequest{Page: p, Limit: req.Limit}
		remaining := total - page.Offset()
		if remaining > page.Limit {
			remaining = page.Limit
		}
		assert.Equal(t, seen, page.Offset())
		seen += remaining
	}
	assert.Equal(t, total, seen)
}
