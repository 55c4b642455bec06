package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blog/internal/domain"
)

const (
	uniqueViolation  pq.ErrorCode = "23505"
	titleUniqueIndex              = "articles_title_unique"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var articleColumns = []string{
	"a.id",
	"a.user_id",
	"a.title",
	"a.content",
	"a.status",
	"a.created_at",
	"a.updated_at",
	"a.deleted_at",
	"u.name AS author_name",
}

type articleRow struct {
	domain.Article
	AuthorName sql.NullString `db:"author_name"`
}

func (r articleRow) toDomain() domain.Article {
	article := r.Article
	if r.AuthorName.Valid {
		article.Author = &domain.User{ID: article.AuthorID, Name: r.AuthorName.String}
	}
	return article
}

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// List returns one page of live articles matching filter, newest first, with authors attached.
func (s *ArticleStore) List(ctx context.Context, filter domain.ListFilter, page, perPage int) (*domain.ArticlePage, error) {
	exec := GetExecutor(ctx, s.db)

	countQuery, countArgs, err := countArticles(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, exec, &total, countQuery, countArgs...); err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	result := &domain.ArticlePage{
		Articles:    []domain.Article{},
		Total:       total,
		CurrentPage: page,
		PerPage:     perPage,
	}
	if total == 0 {
		return result, nil
	}

	query, args, err := listArticles(filter, page, perPage).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []articleRow
	if err := sqlx.SelectContext(ctx, exec, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}

	for _, row := range rows {
		result.Articles = append(result.Articles, row.toDomain())
	}

	return result, nil
}

// FindPublishedByID returns domain.ErrNotFound for missing, soft-deleted and draft rows alike.
func (s *ArticleStore) FindPublishedByID(ctx context.Context, id int64) (*domain.Article, error) {
	return s.findOne(ctx, sq.Eq{"a.id": id, "a.status": string(domain.StatusPublished)})
}

func (s *ArticleStore) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	return s.findOne(ctx, sq.Eq{"a.id": id})
}

func (s *ArticleStore) findOne(ctx context.Context, pred sq.Eq) (*domain.Article, error) {
	query, args, err := selectArticles().Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	var row articleRow
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	article := row.toDomain()
	return &article, nil
}

// ExistsByTitle checks live rows only, matching the partial unique index.
func (s *ArticleStore) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("articles").
		Where(sq.Eq{"title": title, "deleted_at": nil}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists, query, args...); err != nil {
		return false, fmt.Errorf("check title: %w", err)
	}
	return exists, nil
}

// Create inserts article and returns its id. A title collision with a live row is
// reported as domain.ErrDuplicateTitle.
func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) (int64, error) {
	query, args, err := psql.Insert("articles").
		Columns("user_id", "title", "content", "status").
		Values(article.AuthorID, article.Title, article.Content, string(article.Status)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert query: %w", err)
	}

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, args...).Scan(&id)
	if isUniqueViolation(err, titleUniqueIndex) {
		return 0, domain.ErrDuplicateTitle
	}
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}

	return id, nil
}

func selectArticles() sq.SelectBuilder {
	return psql.Select(articleColumns...).
		From("articles a").
		LeftJoin("users u ON u.id = a.user_id").
		Where(sq.Eq{"a.deleted_at": nil})
}

func countArticles(filter domain.ListFilter) sq.SelectBuilder {
	return applyFilter(
		psql.Select("COUNT(*)").From("articles a").Where(sq.Eq{"a.deleted_at": nil}),
		filter,
	)
}

func listArticles(filter domain.ListFilter, page, perPage int) sq.SelectBuilder {
	return applyFilter(selectArticles(), filter).
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(uint64(perPage)).
		Offset(domain.Offset(page, perPage))
}

func applyFilter(b sq.SelectBuilder, filter domain.ListFilter) sq.SelectBuilder {
	switch filter.Status {
	case domain.FilterPublished, domain.FilterDraft:
		b = b.Where(sq.Eq{"a.status": string(filter.Status)})
	}

	if filter.HasSearch() {
		term := "%" + strings.TrimSpace(filter.Search) + "%"
		b = b.Where(sq.Or{
			sq.Like{"a.title": term},
			sq.Like{"a.content": term},
		})
	}

	if filter.DateFrom != nil {
		b = b.Where("a.created_at::date >= ?::date", filter.DateFrom.Format(time.DateOnly))
	}
	if filter.DateTo != nil {
		b = b.Where("a.created_at::date <= ?::date", filter.DateTo.Format(time.DateOnly))
	}

	return b
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation && pqErr.Constraint == constraint
}
