// Package auth provides the credential-verification capability gating the
// destructive endpoints. Domain code never sees tokens; it is wired in as
// route middleware only.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tsampaio/loja-order-service/config"
	"github.com/tsampaio/loja-order-service/internal/apperrors"
)

type Claims struct {
	jwt.RegisteredClaims
}

type TokenIssuer interface {
	Issue(subject string) (string, error)
}

type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// JWTManager signs and verifies HS256 tokens with a secret injected from
// configuration.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(cfg *config.AuthConfig) *JWTManager {
	return &JWTManager{
		secret: []byte(cfg.SecretKey),
		ttl:    time.Duration(cfg.TokenTTLMinutes) * time.Minute,
	}
}

func (m *JWTManager) Issue(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.New().String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTManager) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}
	return claims, nil
}
