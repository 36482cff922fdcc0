package services

import (
	"testing"
	"time"

	"github.com/Alexs779/bot-flow-vercel/domain"
	"github.com/Alexs779/bot-flow-vercel/internal/mocks"
)

var testNow = time.Unix(1_700_000_000, 0)

func testAuthConfig() AuthConfig {
	return AuthConfig{
		BotToken:      "123456:ABC-DEF1234",
		SessionSecret: "test-session-secret",
		MaxAge:        time.Hour,
		Now:           func() time.Time { return testNow },
	}
}

// createVerifiedAuth returns what a verifier reports for a valid launch
func createVerifiedAuth(t *testing.T, user domain.TelegramUser) *domain.VerifiedAuth {
	t.Helper()
	return &domain.VerifiedAuth{
		AuthDate: testNow.Unix(),
		Hash:     "abc123",
		Payload:  map[string]string{"auth_date": "1700000000"},
		User:     user,
	}
}

type authMocks struct {
	verifier *mocks.MockInitDataVerifier
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionIssuer
}

func newAuthMocks() authMocks {
	return authMocks{
		verifier: mocks.NewMockInitDataVerifier(),
		users:    mocks.NewMockUserRepository(),
		sessions: mocks.NewMockSessionIssuer(),
	}
}

func createAuthServiceForTest(t *testing.T, m authMocks, cfg AuthConfig) *AuthServiceImpl {
	t.Helper()
	return NewAuthService(m.verifier, m.users, m.sessions, cfg, nil)
}
