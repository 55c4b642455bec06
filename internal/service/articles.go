package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"blog/internal/domain"
)

type ArticleService struct {
	articles  ArticleStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

// NewArticleService wires the article use-cases. publisher may be nil, in which case
// created articles are not announced.
func NewArticleService(
	articles ArticleStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *ArticleService {
	return &ArticleService{
		articles:  articles,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "article_service"),
	}
}

// ListPublished returns a page of published articles, newest first.
func (s *ArticleService) ListPublished(ctx context.Context, page, perPage int) (*domain.ArticlePage, error) {
	result, err := s.articles.List(ctx, domain.ListFilter{Status: domain.FilterPublished}, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return result, nil
}

// ListForManagement returns drafts and published articles narrowed by filter.
// An empty status behaves like domain.StatusAll.
func (s *ArticleService) ListForManagement(ctx context.Context, filter domain.ListFilter, page, perPage int) (*domain.ArticlePage, error) {
	if filter.Status == "" {
		filter.Status = domain.StatusAll
	}

	result, err := s.articles.List(ctx, filter, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("list articles for management: %w", err)
	}
	return result, nil
}

// ShowArticle returns a published article. Non-positive ids, missing rows, soft-deleted
// rows and drafts all yield domain.ErrNotFound.
func (s *ArticleService) ShowArticle(ctx context.Context, id int64) (*domain.Article, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}

	article, err := s.articles.FindPublishedByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find article %d: %w", id, err)
	}
	return article, nil
}

func (s *ArticleService) IsDuplicateTitle(ctx context.Context, title string) (bool, error) {
	exists, err := s.articles.ExistsByTitle(ctx, title)
	if err != nil {
		return false, fmt.Errorf("check duplicate title: %w", err)
	}
	return exists, nil
}

// CanCreate is the last business-rule check before insertion. Rule violations match
// domain.ErrPreconditionFailed; any other error is a store fault.
func (s *ArticleService) CanCreate(ctx context.Context, input domain.CreateArticleInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" || input.AuthorID <= 0 {
		return domain.ErrMissingFields
	}

	duplicate, err := s.IsDuplicateTitle(ctx, input.Title)
	if err != nil {
		return err
	}
	if duplicate {
		return domain.ErrDuplicateTitle
	}

	if input.Status != "" && !input.Status.Valid() {
		return domain.ErrInvalidStatus
	}

	return nil
}

// CreateArticle inserts the article and re-reads it with its author in one transaction.
// A concurrent insert of the same title surfaces as domain.ErrDuplicateTitle.
func (s *ArticleService) CreateArticle(ctx context.Context, input domain.CreateArticleInput) (*domain.Article, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	article := &domain.Article{
		AuthorID: input.AuthorID,
		Title:    input.Title,
		Content:  input.Content,
		Status:   status,
	}

	var created *domain.Article
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.articles.Create(txCtx, article)
		if err != nil {
			return fmt.Errorf("create article: %w", err)
		}

		created, err = s.articles.FindByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("load created article: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("article created",
		"article_id", created.ID,
		"status", created.Status,
	)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, created); err != nil {
			s.logger.Warn("failed to publish article event",
				"article_id", created.ID,
				"error", err,
			)
		}
	}

	return created, nil
}
