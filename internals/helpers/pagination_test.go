package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsOffset(t *testing.T) {
	p := PageParams{Page: 1, PerPage: 12}
	assert.Equal(t, 12, p.Limit())
	assert.Equal(t, 0, p.Offset())

	p = PageParams{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestBuildPageMeta(t *testing.T) {
	meta := BuildPageMeta(25, PageParams{Page: 2, PerPage: 12})

	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestBuildPageMetaEmptyResult(t *testing.T) {
	meta := BuildPageMeta(0, PageParams{Page: 1, PerPage: 12})

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestBuildPageMetaLastPage(t *testing.T) {
	meta := BuildPageMeta(24, PageParams{Page: 2, PerPage: 12})

	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}
