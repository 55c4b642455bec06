package responder

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/domain"
)

var created = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func TestNewArticleListResponse(t *testing.T) {
	page := &domain.ArticlePage{
		Articles: []domain.Article{
			{ID: 11, AuthorID: 1, Title: "Newest", Content: "c", Status: domain.StatusPublished, CreatedAt: created, UpdatedAt: created,
				Author: &domain.User{ID: 1, Name: "Blog Admin", Email: "admin@example.com"}},
		},
		Total:       11,
		CurrentPage: 1,
		PerPage:     10,
	}

	got := NewArticleListResponse(page)

	want := &ArticleListResponse{
		Articles: []ArticlePayload{{
			ID: 11, AuthorID: 1, Title: "Newest", Content: "c",
			Status: domain.StatusPublished, StatusLabel: "Published",
			CreatedAt: created, UpdatedAt: created,
			Author: &AuthorPayload{ID: 1, Name: "Blog Admin"},
		}},
		TotalCount:  11,
		CurrentPage: 1,
		LastPage:    2,
		PerPage:     10,
		HasPages:    true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list response mismatch (-want +got):\n%s", diff)
	}
}

func TestNewArticleListResponse_EmptyPageKeepsArray(t *testing.T) {
	got := NewArticleListResponse(&domain.ArticlePage{CurrentPage: 3, PerPage: 10})

	assert.NotNil(t, got.Articles)
	assert.Empty(t, got.Articles)
	assert.Equal(t, 1, got.LastPage)
	assert.False(t, got.HasPages)
	assert.Equal(t, 3, got.CurrentPage)
}

func TestNewManagementListResponse(t *testing.T) {
	page := &domain.ArticlePage{Articles: []domain.Article{{ID: 1, Status: domain.StatusDraft}}, Total: 1, CurrentPage: 1, PerPage: 15}

	got := NewManagementListResponse(page, AppliedFilters{Search: "go", DateTo: "2026-01-31"})

	assert.Equal(t, "all", got.ActiveStatusFilter)
	assert.Equal(t, "go", got.SearchQuery)
	assert.Equal(t, "", got.DateFrom)
	assert.Equal(t, "2026-01-31", got.DateTo)
	assert.Equal(t, "Draft", got.Articles[0].StatusLabel)
	assert.Equal(t, []Option{
		{Label: "All", Value: "all"},
		{Label: "Published", Value: "published"},
		{Label: "Draft", Value: "draft"},
	}, got.StatusOptions)
}

func TestNewCreatedResponse_SetsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", nil)

	require.NoError(t, render.Render(rec, req, NewCreatedResponse(&domain.Article{ID: 3, Status: domain.StatusDraft})))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"The article was saved as a draft."`)
}

func TestErrorResponses(t *testing.T) {
	verr := domain.NewValidationError()
	verr.Add("title", "The title field is required.")

	tests := []struct {
		name     string
		renderer render.Renderer
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			renderer: ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"status":"Resource not found."}`,
		},
		{
			name:     "validation",
			renderer: ErrValidation(verr, map[string]string{"title": ""}),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"status":"error","errors":{"title":["The title field is required."]},"input":{"title":""}}`,
		},
		{
			name:     "rejected",
			renderer: ErrCreateRejected(domain.ErrDuplicateTitle, map[string]string{"title": "T"}),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"status":"error","errors":{"title":["Failed to create the article. Please check your input."]},"input":{"title":"T"}}`,
		},
		{
			name:     "system",
			renderer: ErrSystem(errors.New("secret detail"), nil),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"status":"error","errors":{"general":["A system error occurred. Please try again."]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			require.NoError(t, render.Render(rec, req, tt.renderer))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestNewCreateFormResponse(t *testing.T) {
	got := NewCreateFormResponse(FormRules{TitleMaxLength: 255, ContentMinLength: 10, TagsMaxLength: 500})

	assert.Equal(t, domain.StatusDraft, got.Defaults.Status)
	assert.Len(t, got.CategoryOptions, len(Categories))
	for i, opt := range got.CategoryOptions {
		assert.Equal(t, Categories[i], opt.Value)
	}
}
