package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"RepairService/internal/entities"
	"RepairService/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type usersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewUsersRepo(db *sqlx.DB) *usersRepo {
	return &usersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *usersRepo) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()

	query, args := r.qb.Insert("users").
		Columns("user_id", "email", "full_name", "password_hash", "created_at").
		Values(u.ID, u.Email, u.FullName, u.PasswordHash, u.CreatedAt).
		Suffix("ON CONFLICT (email) DO NOTHING").
		MustSql()

	res, err := r.exec(ctx, query, args...)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.User{}, entities.ErrUserAlreadyExists
	}
	return u, nil
}

func (r *usersRepo) UserByEmail(ctx context.Context, email string) (entities.User, error) {
	query, args := r.qb.Select("user_id", "email", "full_name", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		MustSql()

	var user User
	err := r.get(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *usersRepo) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *usersRepo) get(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}
