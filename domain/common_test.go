package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(35), p.Total)
	assert.Equal(t, int64(4), p.TotalPages)
}

func TestNewPaginationGuardsZeroValues(t *testing.T) {
	p := NewPagination(0, 0, 3)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.Limit)
	assert.Equal(t, int64(3), p.TotalPages)
}

func TestNewPaginationEmptyTotal(t *testing.T) {
	p := NewPagination(1, 50, 0)

	assert.Equal(t, int64(0), p.TotalPages)
}
