package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tsampaio/loja-order-service/config"
	"github.com/tsampaio/loja-order-service/internal/apperrors"
	catdto "github.com/tsampaio/loja-order-service/internal/category/dto"
	catrepo "github.com/tsampaio/loja-order-service/internal/category/repository"
	catuc "github.com/tsampaio/loja-order-service/internal/category/usecase"
	"github.com/tsampaio/loja-order-service/internal/product"
	"github.com/tsampaio/loja-order-service/internal/product/dto"
	prodrepo "github.com/tsampaio/loja-order-service/internal/product/repository"
	"github.com/tsampaio/loja-order-service/internal/storage"
)

func newUseCase(t *testing.T) (product.UseCase, product.Repository, *storage.DB, int64) {
	t.Helper()

	db, err := storage.NewSQLite(&config.SQLiteConfig{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		BusyTimeout:  5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := zap.NewNop()
	catRepo := catrepo.NewSQLiteRepository(db)
	repo := prodrepo.NewSQLiteRepository(db)

	cat, err := catuc.NewCategoryUseCase(catRepo, log).
		CreateCategory(context.Background(), &catdto.CreateCategoryInput{Name: "Toys"})
	require.NoError(t, err)

	return NewProductUseCase(repo, catRepo, log), repo, db, cat.ID
}

func createInput(catID int64, name, price string, stock int64) *dto.CreateProductInput {
	return &dto.CreateProductInput{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		CategoryID:    catID,
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	_, err := uc.CreateProduct(context.Background(), createInput(999, "Ball", "29.90", 10))
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateProductRejectsNegativeValues(t *testing.T) {
	uc, _, _, catID := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, createInput(catID, "Ball", "-1.00", 10))
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = uc.CreateProduct(ctx, createInput(catID, "Ball", "1.00", -10))
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestGetProductNotFound(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	_, err := uc.GetProduct(context.Background(), 42)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSearchProductsValidatesSort(t *testing.T) {
	uc, _, _, catID := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, createInput(catID, "Ball", "29.90", 10))
	require.NoError(t, err)

	_, err = uc.SearchProducts(ctx, &dto.ProductFilters{SortBy: "id", SortOrder: dto.SortAsc})
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = uc.SearchProducts(ctx, &dto.ProductFilters{SortBy: dto.SortByName, SortOrder: "sideways"})
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestSearchProductsEmptyResult(t *testing.T) {
	uc, _, _, catID := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, createInput(catID, "Ball", "29.90", 10))
	require.NoError(t, err)

	_, err = uc.SearchProducts(ctx, &dto.ProductFilters{
		Name:      "skateboard",
		SortBy:    dto.SortByName,
		SortOrder: dto.SortAsc,
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSearchProductsFiltersAndSorts(t *testing.T) {
	uc, _, _, catID := newUseCase(t)
	ctx := context.Background()

	for _, p := range []struct {
		name, price string
	}{
		{"Beach Ball", "9.90"},
		{"Soccer Ball", "49.90"},
		{"Puzzle", "19.90"},
	} {
		_, err := uc.CreateProduct(ctx, createInput(catID, p.name, p.price, 5))
		require.NoError(t, err)
	}

	found, err := uc.SearchProducts(ctx, &dto.ProductFilters{
		Name:      "Ball",
		SortBy:    dto.SortByPrice,
		SortOrder: dto.SortDesc,
	})
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, "Soccer Ball", found[0].Name)
	require.Equal(t, "Beach Ball", found[1].Name)
}

func TestUpdateProductReplacesAllFields(t *testing.T) {
	uc, _, _, catID := newUseCase(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, createInput(catID, "Ball", "29.90", 10))
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:            created.ID,
		Name:          "Golden Ball",
		Price:         decimal.RequireFromString("99.90"),
		StockQuantity: 3,
		CategoryID:    catID,
	})
	require.NoError(t, err)

	got, err := uc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated.Name, got.Name)
	require.True(t, got.Price.Equal(decimal.RequireFromString("99.90")))
	require.EqualValues(t, 3, got.StockQuantity)
}

func TestUpdateProductNotFound(t *testing.T) {
	uc, _, _, catID := newUseCase(t)

	_, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID:            42,
		Name:          "Ghost",
		Price:         decimal.RequireFromString("1.00"),
		StockQuantity: 1,
		CategoryID:    catID,
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	require.ErrorIs(t, uc.DeleteProduct(context.Background(), 42), apperrors.ErrNotFound)
}

func TestDeleteProductBlockedByOrderItems(t *testing.T) {
	uc, _, db, catID := newUseCase(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, createInput(catID, "Ball", "29.90", 10))
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO orders (created_at) VALUES (datetime('now'))`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO order_items (order_id, product_id, quantity) VALUES (1, ?, 2)`,
		created.ID)
	require.NoError(t, err)

	require.ErrorIs(t, uc.DeleteProduct(ctx, created.ID), apperrors.ErrConflict)

	// Still retrievable afterwards.
	_, err = uc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
}

func TestDecrementStockGuardsAgainstNegative(t *testing.T) {
	uc, repo, db, catID := newUseCase(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, createInput(catID, "Ball", "29.90", 5))
	require.NoError(t, err)

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	remaining, err := repo.DecrementStock(ctx, tx, created.ID, 3)
	require.NoError(t, err)
	require.EqualValues(t, 2, remaining)

	_, err = repo.DecrementStock(ctx, tx, created.ID, 3)
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}
