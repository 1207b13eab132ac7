package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/logger"
	"github.com/tsampaio/loja-order-service/internal/product"
	"github.com/tsampaio/loja-order-service/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type productRequest struct {
	Nome              string          `json:"nome"`
	Preco             decimal.Decimal `json:"preco"`
	QuantidadeEstoque int64           `json:"quantidade_estoque"`
	CategoriaID       int64           `json:"categoria_id"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("malformed request body: %w", apperrors.ErrInvalidArgument)
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), &dto.CreateProductInput{
		Name:          req.Nome,
		Price:         req.Preco,
		StockQuantity: req.QuantidadeEstoque,
		CategoryID:    req.CategoriaID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Search(c echo.Context) error {
	filters := &dto.ProductFilters{
		Name:      c.QueryParam("nome"),
		SortBy:    c.QueryParam("ordenar_por"),
		SortOrder: c.QueryParam("direcao"),
	}
	if filters.SortBy == "" {
		filters.SortBy = dto.SortByName
	}
	if filters.SortOrder == "" {
		filters.SortOrder = dto.SortAsc
	}

	products, err := h.uc.SearchProducts(c.Request().Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("malformed request body: %w", apperrors.ErrInvalidArgument)
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), &dto.UpdateProductInput{
		ID:            id,
		Name:          req.Nome,
		Price:         req.Preco,
		StockQuantity: req.QuantidadeEstoque,
		CategoryID:    req.CategoriaID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed product id: %w", apperrors.ErrInvalidArgument)
	}
	return id, nil
}
