package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vegetanizando/api/internal/plan/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, url, name, includes FROM plans ORDER BY name, id`)
	if err != nil {
		return nil, apperror.Storage("select plans", err)
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.URL, &p.Name, &p.Includes); err != nil {
			return nil, apperror.Storage("scan plan", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate plans", err)
	}
	return plans, nil
}
