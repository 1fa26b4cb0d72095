package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageComputesTotals(t *testing.T) {
	page := NewPage([]int{1, 2, 3, 4, 5}, 12, 1, 5)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.Limit)
	assert.Len(t, page.Items, 5)
}

func TestNewPageExactMultiple(t *testing.T) {
	page := NewPage([]string{}, 20, 2, 10)
	assert.Equal(t, 2, page.TotalPages)
}

func TestNewPageEmpty(t *testing.T) {
	page := NewPage([]string(nil), 0, 1, 10)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 0, Offset(0, 10))
}
