package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(3, 12)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 12, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, Limit: 12}.CalculateOffset())
	assert.Equal(t, 24, PaginationParams{Page: 3, Limit: 12}.CalculateOffset())
	assert.Equal(t, 0, PaginationParams{Page: 0, Limit: 12}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(25, 2, 12)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 12, meta.Limit)
	assert.Equal(t, int64(25), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)

	// limit=0 returns everything on one page
	noLimit := CalculateMeta(7, 1, 0)
	assert.Equal(t, 1, noLimit.Page)
	assert.Equal(t, 7, noLimit.Limit)
	assert.Equal(t, 1, noLimit.TotalPages)
}
