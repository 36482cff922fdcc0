package telegram

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// Verifier implements domain.InitDataVerifier
type Verifier struct {
	logger *zap.Logger
}

// NewVerifier creates a verifier; a nil logger disables logging
func NewVerifier(logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{logger: logger}
}

// Verify implements domain.InitDataVerifier
func (v *Verifier) Verify(initData, botToken string, opts domain.VerifyOptions) (*domain.VerifiedAuth, error) {
	auth, err := Verify(initData, botToken, opts)
	if err != nil {
		v.logger.Debug("init data rejected",
			zap.String("reason", err.Error()),
			zap.Stringer("kind", domain.KindOf(err)),
			zap.Int("init_data_length", len(initData)),
		)
		return nil, err
	}
	v.logger.Debug("init data verified",
		zap.Int64("telegram_id", auth.User.ID),
		zap.Int64("auth_date", auth.AuthDate),
	)
	return auth, nil
}

// Verify runs the full check: input, hash presence, auth_date, freshness,
// signature, then the user payload. Nothing is accepted without the comparison.
func Verify(initData, botToken string, opts domain.VerifyOptions) (*domain.VerifiedAuth, error) {
	if initData == "" {
		return nil, domain.ErrInitDataEmpty
	}
	if botToken == "" {
		return nil, domain.ErrBotTokenMissing
	}

	payload := ParseInitData(initData)
	if payload.Hash() == "" {
		return nil, domain.ErrHashMissing
	}

	authDate, err := ParseAuthDate(payload)
	if err != nil {
		return nil, err
	}
	if err := CheckFreshness(authDate, opts.MaxAge, opts.Now); err != nil {
		return nil, err
	}

	if err := VerifySignature(botToken, payload); err != nil {
		return nil, err
	}

	user, err := ParseUser(payload[fieldUser])
	if err != nil {
		return nil, err
	}

	return &domain.VerifiedAuth{
		AuthDate: authDate,
		Hash:     strings.ToLower(payload.Hash()),
		Payload:  payload.Clone(),
		User:     user,
	}, nil
}

var _ domain.InitDataVerifier = (*Verifier)(nil)
