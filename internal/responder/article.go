// Package responder shapes use-case results into the JSON view models served by the
// HTTP actions.
package responder

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"blog/internal/domain"
)

type AuthorPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newAuthorPayload(u *domain.User) *AuthorPayload {
	if u == nil {
		return nil
	}
	return &AuthorPayload{ID: u.ID, Name: u.Name}
}

type ArticlePayload struct {
	ID          int64          `json:"id"`
	AuthorID    int64          `json:"authorId"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Status      domain.Status  `json:"status"`
	StatusLabel string         `json:"statusLabel"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Author      *AuthorPayload `json:"author,omitempty"`
}

func NewArticlePayload(a domain.Article) ArticlePayload {
	return ArticlePayload{
		ID:          a.ID,
		AuthorID:    a.AuthorID,
		Title:       a.Title,
		Content:     a.Content,
		Status:      a.Status,
		StatusLabel: a.Status.Label(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Author:      newAuthorPayload(a.Author),
	}
}

// ArticleListResponse is the public listing view: one page plus pagination metadata.
type ArticleListResponse struct {
	Articles    []ArticlePayload `json:"articles"`
	TotalCount  int64            `json:"totalCount"`
	CurrentPage int              `json:"currentPage"`
	LastPage    int              `json:"lastPage"`
	PerPage     int              `json:"perPage"`
	HasPages    bool             `json:"hasPages"`
}

func NewArticleListResponse(page *domain.ArticlePage) *ArticleListResponse {
	items := make([]ArticlePayload, 0, len(page.Articles))
	for _, a := range page.Articles {
		items = append(items, NewArticlePayload(a))
	}

	return &ArticleListResponse{
		Articles:    items,
		TotalCount:  page.Total,
		CurrentPage: page.CurrentPage,
		LastPage:    page.LastPage(),
		PerPage:     page.PerPage,
		HasPages:    page.HasPages(),
	}
}

func (rd *ArticleListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type ArticleDetailResponse struct {
	Article ArticlePayload `json:"article"`
	Author  *AuthorPayload `json:"author"`
}

func NewArticleDetailResponse(a *domain.Article) *ArticleDetailResponse {
	return &ArticleDetailResponse{
		Article: NewArticlePayload(*a),
		Author:  newAuthorPayload(a.Author),
	}
}

func (rd *ArticleDetailResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type CreatedResponse struct {
	Message string         `json:"message"`
	Article ArticlePayload `json:"article"`
}

func NewCreatedResponse(a *domain.Article) *CreatedResponse {
	msg := "The article was saved as a draft."
	if a.Status == domain.StatusPublished {
		msg = "The article was published."
	}
	return &CreatedResponse{Message: msg, Article: NewArticlePayload(*a)}
}

func (rd *CreatedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusCreated)
	return nil
}
