package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/domain/dto"
)

var (
	// ErrInvalidSession is returned when a session token is malformed, forged or expired.
	ErrInvalidSession = errors.New("invalid or expired session token")
	// ErrMissingSecret is returned when the session service has no signing key.
	ErrMissingSecret = errors.New("session secret key is empty")
)

// SessionService issues and validates checkout session tokens.
type SessionService interface {
	// Create opens a new session and signs a token for it.
	Create() (*dto.SessionResponse, error)
	// Validate checks a token and returns the session claims.
	Validate(tokenString string) (*dto.SessionClaims, error)
}

// sessionJWTClaims extends dto.SessionClaims with JWT RegisteredClaims.
type sessionJWTClaims struct {
	dto.SessionClaims
	jwt.RegisteredClaims
}

// SessionServiceImpl implements SessionService with HS256 JWTs.
type SessionServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
}

// SessionConfig holds configuration for the session service.
type SessionConfig struct {
	SecretKey string
	TTL       time.Duration
}

// NewSessionConfigFromAuthConfig creates SessionConfig from config.AuthConfig.
func NewSessionConfigFromAuthConfig(authConfig config.AuthConfig) SessionConfig {
	return SessionConfig{
		SecretKey: authConfig.SessionSecretKey,
		TTL:       authConfig.SessionTTL,
	}
}

// NewSessionService creates a new session service.
func NewSessionService(cfg SessionConfig) *SessionServiceImpl {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		ttl:       ttl,
	}
}

// Create opens a new session identified by a random UUID.
func (s *SessionServiceImpl) Create() (*dto.SessionResponse, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrMissingSecret
	}

	sessionID := uuid.NewString()
	now := time.Now()

	claims := &sessionJWTClaims{
		SessionClaims: dto.SessionClaims{SessionID: sessionID},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &dto.SessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresIn: int64(s.ttl.Seconds()),
	}, nil
}

// Validate parses tokenString and returns its claims.
func (s *SessionServiceImpl) Validate(tokenString string) (*dto.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*sessionJWTClaims)
	if !ok || !token.Valid || claims.SessionID == "" || claims.SessionID != claims.Subject {
		return nil, ErrInvalidSession
	}

	return &claims.SessionClaims, nil
}
