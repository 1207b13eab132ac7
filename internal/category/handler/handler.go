package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/category"
	"github.com/tsampaio/loja-order-service/internal/category/dto"
	"github.com/tsampaio/loja-order-service/internal/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

type createCategoryRequest struct {
	Nome string `json:"nome"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("malformed request body: %w", apperrors.ErrInvalidArgument)
	}

	cat, err := h.uc.CreateCategory(c.Request().Context(), &dto.CreateCategoryInput{
		Name: req.Nome,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fmt.Errorf("malformed category id: %w", apperrors.ErrInvalidArgument)
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
