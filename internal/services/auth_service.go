package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Alexs779/bot-flow-vercel/domain"
	"github.com/Alexs779/bot-flow-vercel/internal/metrics"
)

// AuthConfig carries the secrets and limits of the Telegram login flow
type AuthConfig struct {
	BotToken      string
	SessionSecret string
	MaxAge        time.Duration
	Now           func() time.Time
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	verifier domain.InitDataVerifier
	userRepo domain.UserRepository
	sessions domain.SessionIssuer
	cfg      AuthConfig
	logger   *zap.Logger
}

var _ domain.AuthService = (*AuthServiceImpl)(nil)

// NewAuthService creates a new auth service
func NewAuthService(
	verifier domain.InitDataVerifier,
	userRepo domain.UserRepository,
	sessions domain.SessionIssuer,
	cfg AuthConfig,
	logger *zap.Logger,
) *AuthServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthServiceImpl{
		verifier: verifier,
		userRepo: userRepo,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// AuthenticateTelegram implements domain.AuthService
func (s *AuthServiceImpl) AuthenticateTelegram(ctx context.Context, initData string) (*domain.AuthResult, error) {
	result, err := s.authenticate(ctx, initData)
	s.observe(err)
	return result, err
}

func (s *AuthServiceImpl) authenticate(ctx context.Context, initData string) (*domain.AuthResult, error) {
	if initData == "" {
		return nil, domain.ErrInitDataEmpty
	}
	if s.cfg.BotToken == "" {
		return nil, domain.ErrBotTokenMissing
	}
	if s.cfg.SessionSecret == "" {
		return nil, domain.ErrSessionSecretMissing
	}

	verified, err := s.verifier.Verify(initData, s.cfg.BotToken, domain.VerifyOptions{
		MaxAge: s.cfg.MaxAge,
		Now:    s.cfg.Now,
	})
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindOrCreate(ctx, domain.ProfileFromTelegram(verified.User))
	if err != nil {
		return nil, fmt.Errorf("failed to store telegram user %d: %w", verified.User.ID, err)
	}

	token, err := s.sessions.Issue(user.ID, user.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		SessionToken: token,
		Verified:     verified,
	}, nil
}

func (s *AuthServiceImpl) observe(err error) {
	if err == nil {
		metrics.ObserveAuth(metrics.OutcomeOK)
		return
	}

	kind := domain.KindOf(err)
	metrics.ObserveAuth(kind.String())

	var authErr *domain.AuthError
	switch {
	case kind == domain.KindConfiguration:
		s.logger.Error("telegram auth is misconfigured",
			zap.String("alert", "configuration"),
			zap.Error(err))
	case !errors.As(err, &authErr):
		s.logger.Error("telegram auth failed", zap.Error(err))
	}
}
