package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vegetanizando/api/internal/product/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Create(ctx context.Context, p domain.Product) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO products (id, src, name, portion, price, type)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.Src, p.Name, p.Portion, p.Price, p.Type)
	if err != nil {
		return apperror.Storage("insert product", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `SELECT id, src, name, portion, price, type FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Src, &p.Name, &p.Portion, &p.Price, &p.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, apperror.NotFound("product not found")
	}
	if err != nil {
		return domain.Product{}, apperror.Storage("select product", err)
	}
	return p, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, src, name, portion, price, type FROM products ORDER BY name, id`)
	if err != nil {
		return nil, apperror.Storage("select products", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Src, &p.Name, &p.Portion, &p.Price, &p.Type); err != nil {
			return nil, apperror.Storage("scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate products", err)
	}
	return products, nil
}

func (r *Repository) Update(ctx context.Context, p domain.Product) error {
	ct, err := r.pool.Exec(ctx, `UPDATE products SET src=$2, name=$3, portion=$4, price=$5, type=$6 WHERE id=$1`,
		p.ID, p.Src, p.Name, p.Portion, p.Price, p.Type)
	if err != nil {
		return apperror.Storage("update product", err)
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("product not found")
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return apperror.Storage("delete product", err)
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("product not found")
	}
	return nil
}
