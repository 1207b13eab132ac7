package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/category"
	"github.com/tsampaio/loja-order-service/internal/category/dto"
	"github.com/tsampaio/loja-order-service/internal/logger"
	"github.com/tsampaio/loja-order-service/internal/model"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("category name must not be empty: %w", apperrors.ErrInvalidArgument)
	}

	cat := &model.Category{Name: input.Name}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	uc.logger.Info("category created", zap.Int64("id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("category %d: %w", id, apperrors.ErrNotFound)
	}

	hasProducts, err := uc.repo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return fmt.Errorf("category %d still has associated products: %w", id, apperrors.ErrConflict)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("category deleted", zap.Int64("id", id))
	return nil
}
