package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tsampaio/loja-order-service/config"
	"github.com/tsampaio/loja-order-service/internal/apperrors"
	"github.com/tsampaio/loja-order-service/internal/auth"
	categoryhandler "github.com/tsampaio/loja-order-service/internal/category/handler"
	"github.com/tsampaio/loja-order-service/internal/logger"
	orderhandler "github.com/tsampaio/loja-order-service/internal/order/handler"
	producthandler "github.com/tsampaio/loja-order-service/internal/product/handler"
)

func init() {
	// Monetary values go out as JSON numbers, matching the wire contract.
	decimal.MarshalJSONWithoutQuotes = true
}

type Handlers struct {
	Auth     *auth.Handler
	Category *categoryhandler.CategoryHandler
	Product  *producthandler.ProductHandler
	Order    *orderhandler.OrderHandler
	Verifier auth.TokenVerifier
}

type Server struct {
	echo   *echo.Echo
	cfg    *config.ServerConfig
	logger logger.ZapLogger
}

func New(cfg *config.ServerConfig, log logger.ZapLogger, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newErrorHandler(log)
	e.Use(middleware.Recover())

	requireToken := auth.Middleware(h.Verifier)

	e.POST("/token", h.Auth.Token)

	e.POST("/categorias/", h.Category.Create)
	e.GET("/categorias/", h.Category.List)
	e.DELETE("/categorias/:id", h.Category.Delete, requireToken)

	e.POST("/produtos/", h.Product.Create)
	e.GET("/produtos/", h.Product.List)
	e.GET("/produtos/buscar/", h.Product.Search)
	e.GET("/produtos/:id", h.Product.Get)
	e.PUT("/produtos/:id", h.Product.Update)
	e.DELETE("/produtos/:id", h.Product.Delete, requireToken)

	e.POST("/pedidos/", h.Order.Place)
	e.GET("/pedidos/", h.Order.List)
	e.GET("/pedidos/:id", h.Order.Get)
	e.DELETE("/pedidos/:id", h.Order.Delete, requireToken)

	return &Server{
		echo:   e,
		cfg:    cfg,
		logger: log,
	}
}

func (s *Server) Start() error {
	port := s.cfg.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	s.logger.Info("starting HTTP server", zap.String("port", port))

	if err := s.echo.Start(port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// newErrorHandler maps the failure taxonomy onto status codes. Anything
// outside the taxonomy is an unexpected storage failure and must not leak
// internals to the client.
func newErrorHandler(log logger.ZapLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := err.Error()

		var httpErr *echo.HTTPError
		switch {
		case errors.Is(err, apperrors.ErrInvalidArgument),
			errors.Is(err, apperrors.ErrInsufficientStock),
			errors.Is(err, apperrors.ErrConflict):
			code = http.StatusBadRequest
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = http.StatusUnauthorized
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
		case errors.As(err, &httpErr):
			code = httpErr.Code
			detail = fmt.Sprintf("%v", httpErr.Message)
		}

		if code == http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
			detail = "unexpected storage failure"
		}

		if writeErr := c.JSON(code, map[string]string{"detail": detail}); writeErr != nil {
			log.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
