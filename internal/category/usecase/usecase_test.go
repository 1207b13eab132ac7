package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tsampaio/loja-order-service/config"
	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/category"
	"github.com/tsampaio/loja-order-service/internal/category/dto"
	catrepo "github.com/tsampaio/loja-order-service/internal/category/repository"
	"github.com/tsampaio/loja-order-service/internal/model"
	"github.com/tsampaio/loja-order-service/internal/storage"
)

func newUseCase(t *testing.T) (category.UseCase, *storage.DB) {
	t.Helper()

	db, err := storage.NewSQLite(&config.SQLiteConfig{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		BusyTimeout:  5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCategoryUseCase(catrepo.NewSQLiteRepository(db), zap.NewNop()), db
}

func TestCreateCategoryRejectsEmptyName(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: ""})
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateAndListCategories(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	toys, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Toys"})
	require.NoError(t, err)
	require.NotZero(t, toys.ID)

	games, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Games"})
	require.NoError(t, err)
	require.Greater(t, games.ID, toys.ID)

	categories, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Category{*toys, *games}, categories)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	uc, _ := newUseCase(t)

	require.ErrorIs(t, uc.DeleteCategory(context.Background(), 99), apperrors.ErrNotFound)
}

func TestDeleteCategoryBlockedByProducts(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	toys, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Toys"})
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO products (name, price, stock_quantity, category_id) VALUES (?, ?, ?, ?)`,
		"Ball", decimal.RequireFromString("29.90"), 10, toys.ID)
	require.NoError(t, err)

	require.ErrorIs(t, uc.DeleteCategory(ctx, toys.ID), apperrors.ErrConflict)

	// The category must be left intact.
	categories, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
}

func TestDeleteCategoryWithoutProducts(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	toys, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Toys"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCategory(ctx, toys.ID))

	categories, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	require.Empty(t, categories)
}
