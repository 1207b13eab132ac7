package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/logger"
	"github.com/tsampaio/loja-order-service/internal/order"
	"github.com/tsampaio/loja-order-service/internal/order/dto"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

type placeOrderRequest struct {
	Produtos []orderItemRequest `json:"produtos"`
}

type orderItemRequest struct {
	ProdutoID  int64 `json:"produto_id"`
	Quantidade int64 `json:"quantidade"`
}

func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("malformed request body: %w", apperrors.ErrInvalidArgument)
	}

	input := &dto.PlaceOrderInput{
		Items: make([]dto.OrderItemInput, 0, len(req.Produtos)),
	}
	for _, item := range req.Produtos {
		input.Items = append(input.Items, dto.OrderItemInput{
			ProductID: item.ProdutoID,
			Quantity:  item.Quantidade,
		})
	}

	placed, err := h.uc.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, placed)
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	o, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "order deleted"})
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed order id: %w", apperrors.ErrInvalidArgument)
	}
	return id, nil
}
