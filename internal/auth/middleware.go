package auth

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tsampaio/loja-order-service/internal/apperrors"
)

const claimsContextKey = "auth.claims"

// Middleware requires a valid bearer token on the wrapped routes and stores
// the verified claims on the request context.
func Middleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return fmt.Errorf("missing bearer token: %w", apperrors.ErrUnauthorized)
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return err
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims stored by Middleware, or nil on
// unauthenticated routes.
func ClaimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get(claimsContextKey).(*Claims)
	return claims
}
