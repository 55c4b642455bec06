package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/domain"
)

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return &d
}

func TestCountArticles_Filters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   domain.ListFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "no filters only hides deleted rows",
			filter:   domain.ListFilter{},
			wantSQL:  "SELECT COUNT(*) FROM articles a WHERE a.deleted_at IS NULL",
			wantArgs: nil,
		},
		{
			name:     "all applies no status predicate",
			filter:   domain.ListFilter{Status: domain.StatusAll},
			wantSQL:  "SELECT COUNT(*) FROM articles a WHERE a.deleted_at IS NULL",
			wantArgs: nil,
		},
		{
			name:     "published",
			filter:   domain.ListFilter{Status: domain.FilterPublished},
			wantSQL:  "SELECT COUNT(*) FROM articles a WHERE a.deleted_at IS NULL AND a.status = $1",
			wantArgs: []interface{}{"published"},
		},
		{
			name:     "draft",
			filter:   domain.ListFilter{Status: domain.FilterDraft},
			wantSQL:  "SELECT COUNT(*) FROM articles a WHERE a.deleted_at IS NULL AND a.status = $1",
			wantArgs: []interface{}{"draft"},
		},
		{
			name:     "search matches title or content",
			filter:   domain.ListFilter{Search: "  foo "},
			wantSQL:  "SELECT COUNT(*) FROM articles a WHERE a.deleted_at IS NULL AND (a.title LIKE $1 OR a.content LIKE $2)",
			wantArgs: []interface{}{"%foo%", "%foo%"},
		},
		{
			name:     "blank search is ignored",
			filter:   domain.ListFilter{Search: "   "},
			wantSQL:  "SELECT COUNT(*) FROM articles a WHERE a.deleted_at IS NULL",
			wantArgs: nil,
		},
		{
			name: "everything",
			filter: domain.ListFilter{
				Status:   domain.FilterDraft,
				Search:   "go",
				DateFrom: date(t, "2024-01-01"),
				DateTo:   date(t, "2024-01-31"),
			},
			wantSQL: "SELECT COUNT(*) FROM articles a WHERE a.deleted_at IS NULL AND a.status = $1" +
				" AND (a.title LIKE $2 OR a.content LIKE $3)" +
				" AND a.created_at::date >= $4::date AND a.created_at::date <= $5::date",
			wantArgs: []interface{}{"draft", "%go%", "%go%", "2024-01-01", "2024-01-31"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, args, err := countArticles(tt.filter).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			if diff := cmp.Diff(tt.wantArgs, args, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListArticles_OrderAndPagination(t *testing.T) {
	t.Parallel()

	query, args, err := listArticles(domain.ListFilter{Status: domain.FilterPublished}, 3, 10).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "LEFT JOIN users u ON u.id = a.user_id")
	assert.Contains(t, query, "u.name AS author_name")
	assert.Contains(t, query, "WHERE a.deleted_at IS NULL AND a.status = $1")
	assert.Contains(t, query, "ORDER BY a.created_at DESC, a.id DESC")
	assert.Contains(t, query, "LIMIT 10 OFFSET 20")
	assert.Equal(t, []interface{}{"published"}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	dup := &pq.Error{Code: "23505", Constraint: titleUniqueIndex}

	assert.True(t, isUniqueViolation(dup, titleUniqueIndex))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", dup), titleUniqueIndex))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23505", Constraint: "users_email_key"}, titleUniqueIndex))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503", Constraint: titleUniqueIndex}, titleUniqueIndex))
	assert.False(t, isUniqueViolation(errors.New("boom"), titleUniqueIndex))
	assert.False(t, isUniqueViolation(nil, titleUniqueIndex))
}
