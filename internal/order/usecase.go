package order

import (
	"context"

	"github.com/tsampaio/loja-order-service/internal/model"
	"github.com/tsampaio/loja-order-service/internal/order/dto"
)

type UseCase interface {
	PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
