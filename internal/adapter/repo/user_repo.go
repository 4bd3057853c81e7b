package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// UserRepositoryPG implements UserRepository using PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new user repo.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// Create inserts a new user. The unique index on email backstops the
// caller's existence check: a conflicting insert returns an empty id and no
// error, which callers treat as "already registered".
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) (string, error) {
	props := user.Properties
	if len(props) == 0 {
		props = nil
	}
	var id string
	err := r.sql.QueryRow(ctx, sqlinline.QInsertUser, user.Email, user.Name, props).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByEmail returns the user or nil when absent.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.sql.QueryRow(ctx, sqlinline.QGetUserByEmail, email).
		Scan(&user.ID, &user.Email, &user.Name, &user.Properties, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateName sets the display name for the given email.
func (r *UserRepositoryPG) UpdateName(ctx context.Context, email, name string) (int64, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateUserName, email, name)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
