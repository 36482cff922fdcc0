package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// DefaultSessionTTL is the lifetime of a session token
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionServiceImpl implements domain.SessionIssuer with HS256 JWTs
type SessionServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

type sessionClaims struct {
	TelegramID int64 `json:"telegramId"`
	jwt.RegisteredClaims
}

// NewSessionService creates a session issuer. ttl <= 0 means DefaultSessionTTL,
// a nil now means time.Now.
func NewSessionService(secretKey, issuer string, ttl time.Duration, now func() time.Time) *SessionServiceImpl {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &SessionServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		now:       now,
	}
}

// Issue implements domain.SessionIssuer
func (s *SessionServiceImpl) Issue(userID string, telegramID int64) (string, error) {
	if len(s.secretKey) == 0 {
		return "", domain.ErrSessionSecretMissing
	}

	now := s.now()
	claims := sessionClaims{
		TelegramID: telegramID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Parse implements domain.SessionIssuer
func (s *SessionServiceImpl) Parse(tokenString string) (*domain.SessionClaims, error) {
	if len(s.secretKey) == 0 {
		return nil, domain.ErrSessionSecretMissing
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, domain.ErrSessionInvalid
	}
	if claims.Subject == "" {
		return nil, domain.ErrSessionInvalid
	}

	out := &domain.SessionClaims{
		Subject:    claims.Subject,
		TelegramID: claims.TelegramID,
		TokenID:    claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	out.ExpiresAt = claims.ExpiresAt.Time
	return out, nil
}

var _ domain.SessionIssuer = (*SessionServiceImpl)(nil)
