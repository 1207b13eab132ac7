package category

import (
	"context"

	"github.com/tsampaio/loja-order-service/internal/category/dto"
	"github.com/tsampaio/loja-order-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
