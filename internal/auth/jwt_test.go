package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tsampaio/loja-order-service/config"
	"github.com/tsampaio/loja-order-service/internal/apperrors"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	m := NewJWTManager(&config.AuthConfig{SecretKey: "test-secret", TokenTTLMinutes: 30})

	token, err := m.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
	require.NotEmpty(t, claims.ID)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager(&config.AuthConfig{SecretKey: "test-secret", TokenTTLMinutes: -1})

	token, err := m.Issue("alice")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	require.ErrorContains(t, err, "expired")
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := NewJWTManager(&config.AuthConfig{SecretKey: "one-secret", TokenTTLMinutes: 30})
	verifier := NewJWTManager(&config.AuthConfig{SecretKey: "another-secret", TokenTTLMinutes: 30})

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewJWTManager(&config.AuthConfig{SecretKey: "test-secret", TokenTTLMinutes: 30})

	_, err := m.Verify("not-a-token")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestStaticCredentials(t *testing.T) {
	creds := NewStaticCredentials(&config.AuthConfig{Username: "alice", Password: "s3cr3t"})

	require.NoError(t, creds.VerifyCredentials("alice", "s3cr3t"))
	require.ErrorIs(t, creds.VerifyCredentials("alice", "wrong"), apperrors.ErrUnauthorized)
	require.ErrorIs(t, creds.VerifyCredentials("bob", "s3cr3t"), apperrors.ErrUnauthorized)
}

func TestStaticCredentialsRequireConfiguredPassword(t *testing.T) {
	// An unset password must never allow login with an empty string.
	creds := NewStaticCredentials(&config.AuthConfig{Username: "alice", Password: ""})

	require.ErrorIs(t, creds.VerifyCredentials("alice", ""), apperrors.ErrUnauthorized)
}
