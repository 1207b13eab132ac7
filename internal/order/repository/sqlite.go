package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tsampaio/loja-order-service/internal/model"
	"github.com/tsampaio/loja-order-service/internal/order"
	"github.com/tsampaio/loja-order-service/internal/storage"
)

const joinQuery = `
    SELECT o.id AS order_id, o.created_at, oi.product_id, oi.quantity, p.price
    FROM orders o
    LEFT JOIN order_items oi ON o.id = oi.order_id
    LEFT JOIN products p ON oi.product_id = p.id
`

type SQLiteRepository struct {
	DB *storage.DB
}

func NewSQLiteRepository(db *storage.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) InsertHeader(ctx context.Context, tx *sqlx.Tx, createdAt time.Time) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (created_at) VALUES (?)`, createdAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) InsertItem(ctx context.Context, tx *sqlx.Tx, orderID int64, item model.OrderItem) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO order_items (order_id, product_id, quantity) VALUES (?, ?, ?)`,
		orderID, item.ProductID, item.Quantity)
	return err
}

func (r *SQLiteRepository) DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, orderID int64) error {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM order_items WHERE order_id = ?`, orderID)
	return err
}

func (r *SQLiteRepository) DeleteHeaderTx(ctx context.Context, tx *sqlx.Tx, orderID int64) error {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM orders WHERE id = ?`, orderID)
	return err
}

func (r *SQLiteRepository) HeaderExists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM orders WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SQLiteRepository) RowsByOrder(ctx context.Context, id int64) ([]order.Row, error) {
	rows := []order.Row{}
	err := r.DB.SelectContext(ctx, &rows, joinQuery+` WHERE o.id = ? ORDER BY oi.id`, id)
	return rows, err
}

func (r *SQLiteRepository) AllRows(ctx context.Context) ([]order.Row, error) {
	rows := []order.Row{}
	err := r.DB.SelectContext(ctx, &rows, joinQuery+` ORDER BY o.id, oi.id`)
	return rows, err
}
