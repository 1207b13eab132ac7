package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tsampaio/loja-order-service/internal/logger"
)

type Handler struct {
	creds  CredentialVerifier
	issuer TokenIssuer
	logger logger.ZapLogger
}

func NewHandler(creds CredentialVerifier, issuer TokenIssuer, log logger.ZapLogger) *Handler {
	return &Handler{
		creds:  creds,
		issuer: issuer,
		logger: log,
	}
}

// Token handles the form-encoded password login and returns a bearer token.
func (h *Handler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if err := h.creds.VerifyCredentials(username, password); err != nil {
		h.logger.Warn("login rejected", zap.String("username", username))
		return err
	}

	token, err := h.issuer.Issue(username)
	if err != nil {
		return err
	}

	h.logger.Info("token issued", zap.String("username", username))
	return c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
