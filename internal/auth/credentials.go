package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/tsampaio/loja-order-service/config"
	"github.com/tsampaio/loja-order-service/internal/apperrors"
)

// CredentialVerifier checks the login credentials presented to the token
// endpoint.
type CredentialVerifier interface {
	VerifyCredentials(username, password string) error
}

// StaticCredentials verifies against a single account injected from
// configuration.
type StaticCredentials struct {
	username string
	password string
}

func NewStaticCredentials(cfg *config.AuthConfig) *StaticCredentials {
	return &StaticCredentials{
		username: cfg.Username,
		password: cfg.Password,
	}
}

func (s *StaticCredentials) VerifyCredentials(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK || s.password == "" {
		return fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}
	return nil
}
