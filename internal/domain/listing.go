package domain

import (
	"math"
	"strings"
	"time"
)

// StatusFilter selects articles by status in listings. StatusAll applies no predicate.
type StatusFilter string

const (
	StatusAll StatusFilter = "all"

	FilterPublished = StatusFilter(StatusPublished)
	FilterDraft     = StatusFilter(StatusDraft)
)

// ParseStatusFilter accepts published, draft and all. Anything else is reported as not ok.
func ParseStatusFilter(raw string) (StatusFilter, bool) {
	switch f := StatusFilter(raw); f {
	case StatusAll, FilterPublished, FilterDraft:
		return f, true
	default:
		return "", false
	}
}

// ListFilter holds the optional predicates of an article listing.
// Zero values mean "not filtered".
type ListFilter struct {
	Status   StatusFilter
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// HasSearch reports whether a non-blank search term is set.
func (f ListFilter) HasSearch() bool {
	return strings.TrimSpace(f.Search) != ""
}

// ArticlePage is one page of a listing plus the numbers needed to paginate it.
type ArticlePage struct {
	Articles    []Article
	Total       int64
	CurrentPage int
	PerPage     int
}

// LastPage is ceil(Total/PerPage) with a floor of 1.
func (p *ArticlePage) LastPage() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	last := int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if last < 1 {
		return 1
	}
	return last
}

func (p *ArticlePage) HasPages() bool {
	return p.LastPage() > 1
}

// Offset returns the number of rows skipped before page, saturating at math.MaxInt64.
func Offset(page, perPage int) uint64 {
	if page < 1 || perPage < 1 {
		return 0
	}
	skipped := uint64(page - 1)
	if skipped > math.MaxInt64/uint64(perPage) {
		return math.MaxInt64
	}
	return skipped * uint64(perPage)
}
