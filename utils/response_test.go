package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		total    int64
		expected Pagination
	}{
		{
			name:     "exact division",
			page:     1,
			limit:    10,
			total:    30,
			expected: Pagination{Page: 1, Limit: 10, Total: 30, Pages: 3},
		},
		{
			name:     "partial last page",
			page:     2,
			limit:    10,
			total:    25,
			expected: Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3},
		},
		{
			name:     "empty result",
			page:     1,
			limit:    10,
			total:    0,
			expected: Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0},
		},
		{
			name:     "zero page defaults to first",
			page:     0,
			limit:    10,
			total:    5,
			expected: Pagination{Page: 1, Limit: 10, Total: 5, Pages: 1},
		},
		{
			name:     "negative limit defaults to ten",
			page:     1,
			limit:    -3,
			total:    15,
			expected: Pagination{Page: 1, Limit: 10, Total: 15, Pages: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, int64(0), NewPagination(1, 10, 100).Offset())
	assert.Equal(t, int64(20), NewPagination(3, 10, 100).Offset())
	assert.Equal(t, int64(50), NewPagination(2, 50, 100).Offset())
}
