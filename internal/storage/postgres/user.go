package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"blog/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Upsert inserts user keyed by email, refreshing the name of an existing account.
func (s *UserStore) Upsert(ctx context.Context, user *domain.User) (int64, error) {
	query, args, err := psql.Insert("users").
		Columns("name", "email").
		Values(user.Name, user.Email).
		Suffix("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW() RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert query: %w", err)
	}

	var id int64
	if err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert user: %w", err)
	}
	return id, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query, args, err := psql.Select("id", "name", "email").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var user domain.User
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}
