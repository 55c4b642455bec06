package action

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"blog/internal/domain"
	"blog/internal/responder"
)

// queryInt reads the leading integer of a query value. Absent keys yield def;
// values without leading digits yield 0.
func queryInt(r *http.Request, key string, def int) int {
	values := r.URL.Query()
	if !values.Has(key) {
		return def
	}
	return leadingInt(values.Get(key))
}

func leadingInt(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	return n
}

// pagination returns the requested page clamped below at 1 and perPage clamped to
// [1, maxPerPage]. The page is not clamped above; past the end yields an empty page.
func pagination(r *http.Request, defPerPage, maxPerPage int) (page, perPage int) {
	page = max(1, queryInt(r, "page", 1))
	perPage = min(max(1, queryInt(r, "per_page", defPerPage)), maxPerPage)
	return page, perPage
}

// managementFilters extracts the management listing filters. Unknown statuses and
// unparsable dates are dropped; only surviving values are echoed back.
func managementFilters(r *http.Request) (domain.ListFilter, responder.AppliedFilters) {
	q := r.URL.Query()
	var (
		filter  domain.ListFilter
		applied responder.AppliedFilters
	)

	if status, ok := domain.ParseStatusFilter(strings.TrimSpace(q.Get("status"))); ok {
		filter.Status = status
		applied.Status = string(status)
	}

	if search := strings.TrimSpace(q.Get("search")); search != "" {
		filter.Search = search
		applied.Search = search
	}

	if from, ok := parseDate(q.Get("date_from")); ok {
		filter.DateFrom = &from
		applied.DateFrom = from.Format(time.DateOnly)
	}
	if to, ok := parseDate(q.Get("date_to")); ok {
		filter.DateTo = &to
		applied.DateTo = to.Format(time.DateOnly)
	}

	return filter, applied
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
