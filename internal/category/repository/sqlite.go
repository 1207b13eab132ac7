package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tsampaio/loja-order-service/internal/model"
	"github.com/tsampaio/loja-order-service/internal/storage"
)

type SQLiteRepository struct {
	DB *storage.DB
}

func NewSQLiteRepository(db *storage.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *model.Category) error {
	res, err := r.DB.NamedExecContext(ctx,
		`INSERT INTO categories (name) VALUES (:name)`, c)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	err := r.DB.GetContext(ctx, &category,
		`SELECT * FROM categories WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	err := r.DB.SelectContext(ctx, &categories,
		`SELECT * FROM categories ORDER BY id`)
	return categories, err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) HasProducts(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM products WHERE category_id = ?`, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
