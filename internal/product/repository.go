package product

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tsampaio/loja-order-service/internal/model"
	"github.com/tsampaio/loja-order-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (bool, error)
	Delete(ctx context.Context, id int64) error

	// HasOrderItems reports whether any order line still references the product.
	HasOrderItems(ctx context.Context, id int64) (bool, error)

	// Transaction-scoped primitives. Order placement runs these on its own
	// transaction so product reads, line-item inserts and stock decrements
	// commit or roll back as one unit.
	FindByIDTx(ctx context.Context, tx *sqlx.Tx, id int64) (*model.Product, error)
	DecrementStock(ctx context.Context, tx *sqlx.Tx, id, quantity int64) (int64, error)
}
