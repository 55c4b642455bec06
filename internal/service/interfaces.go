package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"blog/internal/domain"
)

type ArticleStore interface {
	List(ctx context.Context, filter domain.ListFilter, page, perPage int) (*domain.ArticlePage, error)
	FindPublishedByID(ctx context.Context, id int64) (*domain.Article, error)
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, article *domain.Article) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.Article) error
	Close() error
}
