package category

import (
	"context"

	"github.com/tsampaio/loja-order-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Delete(ctx context.Context, id int64) error

	// HasProducts reports whether any product still references the category.
	HasProducts(ctx context.Context, id int64) (bool, error)
}
