package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vegetanizando/api/internal/admin/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	var a domain.Admin
	err := r.pool.QueryRow(ctx, `SELECT id, username, email, password_hash, src FROM admins WHERE email=$1`, email).
		Scan(&a.ID, &a.User, &a.Email, &a.PasswordHash, &a.Src)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Admin{}, apperror.NotFound("admin not found")
	}
	if err != nil {
		return domain.Admin{}, apperror.Storage("select admin", err)
	}
	return a, nil
}
