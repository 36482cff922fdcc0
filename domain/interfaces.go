package domain

import (
	"context"
	"time"
)

// UserRepository is the user directory keyed by Telegram id
type UserRepository interface {
	FindOrCreate(ctx context.Context, profile TelegramProfile) (*User, error)
	Reset(ctx context.Context) error
}

// VerifyOptions tune the freshness check
type VerifyOptions struct {
	MaxAge time.Duration
	Now    func() time.Time
}

// InitDataVerifier validates raw Mini App init data
type InitDataVerifier interface {
	Verify(initData, botToken string, opts VerifyOptions) (*VerifiedAuth, error)
}

// SessionIssuer mints and parses stateless session tokens
type SessionIssuer interface {
	Issue(userID string, telegramID int64) (string, error)
	Parse(token string) (*SessionClaims, error)
}

// AuthService authenticates Telegram Mini App launches
type AuthService interface {
	AuthenticateTelegram(ctx context.Context, initData string) (*AuthResult, error)
}

// PaymentService creates payment invoices for in-game purchases
type PaymentService interface {
	CreateInvoice(ctx context.Context, sessionToken, moveID string) (string, error)
}
