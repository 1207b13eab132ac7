package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/model"
	"github.com/tsampaio/loja-order-service/internal/product/dto"
	"github.com/tsampaio/loja-order-service/internal/storage"
)

type SQLiteRepository struct {
	DB *storage.DB
}

func NewSQLiteRepository(db *storage.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO products (name, price, stock_quantity, category_id)
        VALUES (:name, :price, :stock_quantity, :category_id)
    `, p)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.DB.GetContext(ctx, &product,
		`SELECT * FROM products WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products,
		`SELECT * FROM products ORDER BY id`)
	return products, err
}

func (r *SQLiteRepository) Search(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	query := `SELECT * FROM products`
	args := []interface{}{}

	if f.Name != "" {
		query += ` WHERE name LIKE ?`
		args = append(args, "%"+f.Name+"%")
	}

	// Whitelist the sort column; the filter values are caller-supplied and
	// must never reach the query text directly.
	orderBy := "name"
	switch f.SortBy {
	case dto.SortByName:
		orderBy = "name"
	case dto.SortByPrice:
		orderBy = "price"
	case dto.SortByStock:
		orderBy = "stock_quantity"
	}

	direction := "ASC"
	if f.SortOrder == dto.SortDesc {
		direction = "DESC"
	}

	query += fmt.Sprintf(" ORDER BY %s %s", orderBy, direction)

	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products, query, args...)
	return products, err
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Product) (bool, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        UPDATE products
        SET name = :name,
            price = :price,
            stock_quantity = :stock_quantity,
            category_id = :category_id
        WHERE id = :id
    `, p)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) HasOrderItems(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM order_items WHERE product_id = ?`, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SQLiteRepository) FindByIDTx(ctx context.Context, tx *sqlx.Tx, id int64) (*model.Product, error) {
	var product model.Product
	err := tx.GetContext(ctx, &product,
		`SELECT * FROM products WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLiteRepository) DecrementStock(ctx context.Context, tx *sqlx.Tx, id, quantity int64) (int64, error) {
	res, err := tx.ExecContext(ctx, `
        UPDATE products
        SET stock_quantity = stock_quantity - ?
        WHERE id = ? AND stock_quantity >= ?
    `, quantity, id, quantity)
	if err != nil {
		return 0, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, fmt.Errorf("stock of product %d cannot go negative: %w", id, apperrors.ErrInvalidArgument)
	}

	var remaining int64
	if err := tx.GetContext(ctx, &remaining,
		`SELECT stock_quantity FROM products WHERE id = ?`, id); err != nil {
		return 0, err
	}
	return remaining, nil
}
