package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticlePage_LastPage(t *testing.T) {
	tests := []struct {
		total    int64
		perPage  int
		wantLast int
		wantHas  bool
	}{
		{total: 0, perPage: 10, wantLast: 1},
		{total: 1, perPage: 10, wantLast: 1},
		{total: 10, perPage: 10, wantLast: 1},
		{total: 11, perPage: 10, wantLast: 2, wantHas: true},
		{total: 50, perPage: 1, wantLast: 50, wantHas: true},
		{total: 5, perPage: 0, wantLast: 1},
	}

	for _, tt := range tests {
		p := &ArticlePage{Total: tt.total, PerPage: tt.perPage}
		assert.Equal(t, tt.wantLast, p.LastPage(), "total=%d perPage=%d", tt.total, tt.perPage)
		assert.Equal(t, tt.wantHas, p.HasPages(), "total=%d perPage=%d", tt.total, tt.perPage)
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, uint64(0), Offset(1, 10))
	assert.Equal(t, uint64(10), Offset(2, 10))
	assert.Equal(t, uint64(0), Offset(0, 10))
	assert.Equal(t, uint64(0), Offset(3, 0))
	assert.Equal(t, uint64(math.MaxInt64), Offset(math.MaxInt, 50))
}

func TestParseStatusFilter(t *testing.T) {
	for _, raw := range []string{"all", "published", "draft"} {
		f, ok := ParseStatusFilter(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, StatusFilter(raw), f)
	}

	for _, raw := range []string{"", "Published", "archived"} {
		_, ok := ParseStatusFilter(raw)
		assert.False(t, ok, raw)
	}
}

func TestListFilter_HasSearch(t *testing.T) {
	assert.False(t, ListFilter{}.HasSearch())
	assert.False(t, ListFilter{Search: "  "}.HasSearch())
	assert.True(t, ListFilter{Search: "go"}.HasSearch())
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusPublished.Valid())
	assert.False(t, Status("").Valid())
	assert.Equal(t, "Draft", StatusDraft.Label())
	assert.Equal(t, "Published", StatusPublished.Label())
}

func TestPreconditionErrors(t *testing.T) {
	for _, err := range []error{ErrDuplicateTitle, ErrMissingFields, ErrInvalidStatus} {
		assert.True(t, errors.Is(err, ErrPreconditionFailed), err.Error())
	}
	assert.False(t, errors.Is(ErrNotFound, ErrPreconditionFailed))
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError()
	assert.True(t, verr.Empty())

	verr.Add("title", "required")
	verr.Add("content", "too short")
	verr.Add("title", "too long")

	assert.False(t, verr.Empty())
	assert.Equal(t, []string{"required", "too long"}, verr.Fields["title"])
	assert.Equal(t, "validation failed: content, title", verr.Error())
}
