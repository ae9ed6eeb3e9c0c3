package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vegetanizando/api/internal/purchase/domain"
	"github.com/vegetanizando/api/pkg/apperror"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) CreateWithOutbox(ctx context.Context, p domain.Purchase, eventType string, payload []byte, headers map[string]string, traceparent string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperror.Storage("begin tx", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `INSERT INTO purchases (id, customer, email, celphone, cpf, address, status, date, total_cart)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.User, p.Email, p.Celphone, p.CPF, p.Address, p.Status, p.Date, p.TotalCart)
	if err != nil {
		return apperror.Storage("insert purchase", err)
	}

	batch := &pgx.Batch{}
	for i, item := range p.Cart {
		batch.Queue(`INSERT INTO purchase_items (purchase_id, position, product_id, name, price, quantity)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			p.ID, i, item.ProductID, item.Name, item.Price, item.Quantity)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperror.Storage("insert purchase items", err)
	}

	if err := insertOutbox(ctx, tx, p.ID, eventType, payload, headers, traceparent); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.Storage("commit", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Purchase, error) {
	var p domain.Purchase
	err := r.pool.QueryRow(ctx, `SELECT id, customer, email, celphone, cpf, address, status, date, total_cart
		FROM purchases WHERE id=$1`, id).
		Scan(&p.ID, &p.User, &p.Email, &p.Celphone, &p.CPF, &p.Address, &p.Status, &p.Date, &p.TotalCart)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Purchase{}, apperror.NotFound("purchase not found")
	}
	if err != nil {
		return domain.Purchase{}, apperror.Storage("select purchase", err)
	}

	items, err := r.itemsFor(ctx, []string{id})
	if err != nil {
		return domain.Purchase{}, err
	}
	p.Cart = items[id]
	return p, nil
}

func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Purchase, error) {
	return r.list(ctx, `SELECT id, customer, email, celphone, cpf, address, status, date, total_cart
		FROM purchases WHERE date >= $1 AND date <= $2 ORDER BY date DESC, id`, from, to)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Purchase, error) {
	return r.list(ctx, `SELECT id, customer, email, celphone, cpf, address, status, date, total_cart
		FROM purchases ORDER BY date DESC, id`)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Purchase, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Storage("select purchases", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	var ids []string
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(&p.ID, &p.User, &p.Email, &p.Celphone, &p.CPF, &p.Address, &p.Status, &p.Date, &p.TotalCart); err != nil {
			return nil, apperror.Storage("scan purchase", err)
		}
		purchases = append(purchases, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate purchases", err)
	}
	if len(purchases) == 0 {
		return purchases, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range purchases {
		purchases[i].Cart = items[purchases[i].ID]
	}
	return purchases, nil
}

func (r *Repository) itemsFor(ctx context.Context, ids []string) (map[string][]domain.CartItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT purchase_id, product_id, name, price, quantity
		FROM purchase_items WHERE purchase_id = ANY($1) ORDER BY purchase_id, position`, ids)
	if err != nil {
		return nil, apperror.Storage("select purchase items", err)
	}
	defer rows.Close()

	items := make(map[string][]domain.CartItem, len(ids))
	for rows.Next() {
		var pid string
		var item domain.CartItem
		if err := rows.Scan(&pid, &item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, apperror.Storage("scan purchase item", err)
		}
		items[pid] = append(items[pid], item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate purchase items", err)
	}
	return items, nil
}

func (r *Repository) UpdateStatusWithOutbox(ctx context.Context, id string, status domain.Status, eventType string, payload []byte, headers map[string]string, traceparent string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperror.Storage("begin tx", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	ct, err := tx.Exec(ctx, `UPDATE purchases SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return apperror.Storage("update purchase status", err)
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("purchase not found")
	}

	if err := insertOutbox(ctx, tx, id, eventType, payload, headers, traceparent); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.Storage("commit", err)
	}
	return nil
}

func (r *Repository) DeleteWithOutbox(ctx context.Context, id string, eventType string, payload []byte, headers map[string]string, traceparent string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperror.Storage("begin tx", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id=$1`, id); err != nil {
		return apperror.Storage("delete purchase items", err)
	}
	ct, err := tx.Exec(ctx, `DELETE FROM purchases WHERE id=$1`, id)
	if err != nil {
		return apperror.Storage("delete purchase", err)
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("purchase not found")
	}

	if err := insertOutbox(ctx, tx, id, eventType, payload, headers, traceparent); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.Storage("commit", err)
	}
	return nil
}

func insertOutbox(ctx context.Context, tx pgx.Tx, aggregateID, eventType string, payload []byte, headers map[string]string, traceparent string) error {
	_, err := tx.Exec(ctx, `INSERT INTO outbox (aggregate_type, aggregate_id, type, payload, headers, traceparent, status)
		VALUES ($1,$2,$3,$4,$5,$6,'pending')`,
		"purchase", aggregateID, eventType, payload, headers, traceparent)
	if err != nil {
		return apperror.Storage("insert outbox event", err)
	}
	return nil
}
