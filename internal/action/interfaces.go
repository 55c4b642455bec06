package action

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"blog/internal/domain"
)

type ArticleService interface {
	ListPublished(ctx context.Context, page, perPage int) (*domain.ArticlePage, error)
	ListForManagement(ctx context.Context, filter domain.ListFilter, page, perPage int) (*domain.ArticlePage, error)
	ShowArticle(ctx context.Context, id int64) (*domain.Article, error)
	IsDuplicateTitle(ctx context.Context, title string) (bool, error)
	CanCreate(ctx context.Context, input domain.CreateArticleInput) error
	CreateArticle(ctx context.Context, input domain.CreateArticleInput) (*domain.Article, error)
}

type HealthChecker interface {
	PingContext(ctx context.Context) error
}
