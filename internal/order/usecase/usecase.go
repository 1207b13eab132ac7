package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/logger"
	"github.com/tsampaio/loja-order-service/internal/model"
	"github.com/tsampaio/loja-order-service/internal/order"
	"github.com/tsampaio/loja-order-service/internal/order/dto"
	"github.com/tsampaio/loja-order-service/internal/product"
	"github.com/tsampaio/loja-order-service/internal/storage"
)

type orderUseCase struct {
	db       *storage.DB
	repo     order.Repository
	products product.Repository
	logger   logger.ZapLogger
}

func NewOrderUseCase(db *storage.DB, repo order.Repository, products product.Repository, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		db:       db,
		repo:     repo,
		products: products,
		logger:   log,
	}
}

// PlaceOrder commits the order header, every line item and every stock
// decrement as one transaction. Any failure rolls the whole unit back, so no
// stock is ever debited for an order that did not commit.
func (uc *orderUseCase) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*model.Order, error) {
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for product %d must be positive: %w",
				item.ProductID, apperrors.ErrInvalidArgument)
		}
	}

	placed := &model.Order{
		CreatedAt: time.Now().UTC(),
		Items:     make([]model.OrderItem, 0, len(input.Items)),
		Total:     decimal.Zero,
	}

	err := uc.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		id, err := uc.repo.InsertHeader(ctx, tx, placed.CreatedAt)
		if err != nil {
			return err
		}
		placed.ID = id

		for _, item := range input.Items {
			p, err := uc.products.FindByIDTx(ctx, tx, item.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("product %d: %w", item.ProductID, apperrors.ErrNotFound)
			}
			if p.StockQuantity < item.Quantity {
				return fmt.Errorf("product %d has %d in stock, %d requested: %w",
					item.ProductID, p.StockQuantity, item.Quantity, apperrors.ErrInsufficientStock)
			}

			placed.Total = placed.Total.Add(p.Price.Mul(decimal.NewFromInt(item.Quantity)))

			line := model.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
			if err := uc.repo.InsertItem(ctx, tx, id, line); err != nil {
				return err
			}
			if _, err := uc.products.DecrementStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			placed.Items = append(placed.Items, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.Int64("id", placed.ID),
		zap.Int("items", len(placed.Items)),
		zap.String("total", placed.Total.String()))
	return placed, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	rows, err := uc.repo.RowsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("order %d: %w", id, apperrors.ErrNotFound)
	}
	return buildOrder(rows), nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := uc.repo.AllRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no orders exist: %w", apperrors.ErrNotFound)
	}

	orders := []model.Order{}
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i == len(rows) || rows[i].OrderID != rows[start].OrderID {
			orders = append(orders, *buildOrder(rows[start:i]))
			start = i
		}
	}
	return orders, nil
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	exists, err := uc.repo.HeaderExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("order %d: %w", id, apperrors.ErrNotFound)
	}

	// Two-step delete: line items first, then the header. Stock is not
	// restored; deleting an order does not return decremented quantities.
	err = uc.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := uc.repo.DeleteItemsTx(ctx, tx, id); err != nil {
			return err
		}
		return uc.repo.DeleteHeaderTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("order deleted", zap.Int64("id", id))
	return nil
}

// buildOrder folds join rows of a single order into the denormalized view.
// The total is recomputed from current product prices, which makes displayed
// totals drift when prices change after the order was placed.
func buildOrder(rows []order.Row) *model.Order {
	o := &model.Order{
		ID:        rows[0].OrderID,
		CreatedAt: rows[0].CreatedAt,
		Items:     []model.OrderItem{},
		Total:     decimal.Zero,
	}
	for _, row := range rows {
		if !row.ProductID.Valid {
			continue
		}
		o.Items = append(o.Items, model.OrderItem{
			ProductID: row.ProductID.Int64,
			Quantity:  row.Quantity.Int64,
		})
		o.Total = o.Total.Add(row.Price.Decimal.Mul(decimal.NewFromInt(row.Quantity.Int64)))
	}
	return o
}
