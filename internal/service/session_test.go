package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/config"
)

func TestNewSessionConfigFromAuthConfig(t *testing.T) {
	cfg := NewSessionConfigFromAuthConfig(config.AuthConfig{
		SessionSecretKey: "secret",
		SessionTTL:       time.Hour,
	})

	assert.Equal(t, "secret", cfg.SecretKey)
	assert.Equal(t, time.Hour, cfg.TTL)
}

func TestSessionService_CreateAndValidate(t *testing.T) {
	svc := NewSessionService(SessionConfig{SecretKey: "test-secret", TTL: time.Hour})

	session, err := svc.Create()
	require.NoError(t, err)

	_, err = uuid.Parse(session.SessionID)
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, int64(3600), session.ExpiresIn)

	claims, err := svc.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, claims.SessionID)
}

func TestSessionService_CreateUniqueSessions(t *testing.T) {
	svc := NewSessionService(SessionConfig{SecretKey: "test-secret"})

	first, err := svc.Create()
	require.NoError(t, err)
	second, err := svc.Create()
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, int64(86400), first.ExpiresIn)
}

func TestSessionService_CreateWithoutSecret(t *testing.T) {
	svc := NewSessionService(SessionConfig{})

	_, err := svc.Create()
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestSessionService_Validate(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewSessionService(SessionConfig{SecretKey: string(secret), TTL: time.Hour})

	sign := func(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	expired := &sessionJWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "s1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired.SessionID = "s1"

	noSession := &sessionJWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	mismatched := &sessionJWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "s2",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	mismatched.SessionID = "s1"

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: sign(t, jwt.SigningMethodHS256, []byte("other"), mismatched)},
		{name: "expired", token: sign(t, jwt.SigningMethodHS256, secret, expired)},
		{name: "missing session id", token: sign(t, jwt.SigningMethodHS256, secret, noSession)},
		{name: "subject mismatch", token: sign(t, jwt.SigningMethodHS256, secret, mismatched)},
		{name: "unsigned", token: sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, mismatched)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidSession)
			assert.Nil(t, claims)
		})
	}
}
