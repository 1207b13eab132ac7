package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/category"
	"github.com/tsampaio/loja-order-service/internal/logger"
	"github.com/tsampaio/loja-order-service/internal/model"
	"github.com/tsampaio/loja-order-service/internal/product"
	"github.com/tsampaio/loja-order-service/internal/product/dto"
)

type productUseCase struct {
	repo    product.Repository
	catRepo category.Repository
	logger  logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, catRepo category.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:    repo,
		catRepo: catRepo,
		logger:  log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := uc.validateFields(input.Price, input.StockQuantity); err != nil {
		return nil, err
	}

	cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %d: %w", input.CategoryID, apperrors.ErrNotFound)
	}

	p := &model.Product{
		Name:          input.Name,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *productUseCase) SearchProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	switch filters.SortBy {
	case dto.SortByName, dto.SortByPrice, dto.SortByStock:
	default:
		return nil, fmt.Errorf("unknown sort field %q: %w", filters.SortBy, apperrors.ErrInvalidArgument)
	}

	switch filters.SortOrder {
	case dto.SortAsc, dto.SortDesc:
	default:
		return nil, fmt.Errorf("unknown sort direction %q: %w", filters.SortOrder, apperrors.ErrInvalidArgument)
	}

	products, err := uc.repo.Search(ctx, filters)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no product matched the search: %w", apperrors.ErrNotFound)
	}
	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := uc.validateFields(input.Price, input.StockQuantity); err != nil {
		return nil, err
	}

	cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %d: %w", input.CategoryID, apperrors.ErrNotFound)
	}

	// Full field replacement, no partial-patch semantics.
	p := &model.Product{
		ID:            input.ID,
		Name:          input.Name,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	}

	found, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("product %d: %w", input.ID, apperrors.ErrNotFound)
	}

	uc.logger.Info("product updated", zap.Int64("id", p.ID))
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}

	referenced, err := uc.repo.HasOrderItems(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("product %d is referenced by existing orders: %w", id, apperrors.ErrConflict)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("product deleted", zap.Int64("id", id))
	return nil
}

func (uc *productUseCase) validateFields(price decimal.Decimal, stock int64) error {
	if price.IsNegative() {
		return fmt.Errorf("price must not be negative: %w", apperrors.ErrInvalidArgument)
	}
	if stock < 0 {
		return fmt.Errorf("stock quantity must not be negative: %w", apperrors.ErrInvalidArgument)
	}
	return nil
}
