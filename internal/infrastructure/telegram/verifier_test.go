package telegram

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

func signedAt(authDate int64, user string) string {
	return SignInitData(testBotToken, map[string]string{
		"query_id":  "query",
		"user":      user,
		"auth_date": strconv.FormatInt(authDate, 10),
	})
}

func TestVerify_Success(t *testing.T) {
	raw := signedAt(fixedNow.Unix(), `{"id":42,"first_name":"Alex"}`)

	auth, err := NewVerifier(nil).Verify(raw, testBotToken, domain.VerifyOptions{Now: clockAt(fixedNow)})
	require.NoError(t, err)

	assert.Equal(t, fixedNow.Unix(), auth.AuthDate)
	assert.Equal(t, domain.TelegramUser{ID: 42, FirstName: "Alex"}, auth.User)
	assert.Len(t, auth.Hash, 64)
	assert.Equal(t, auth.Hash, auth.Payload["hash"])
	assert.Equal(t, "query", auth.Payload["query_id"])
	assert.Equal(t, fixedNow, auth.AuthTime())
}

func TestVerify_Rejections(t *testing.T) {
	now := fixedNow.Unix()
	validUser := `{"id":42,"first_name":"Alex"}`

	tests := []struct {
		name     string
		initData string
		botToken string
		expected error
		kind     domain.ErrorKind
	}{
		{
			name:     "empty init data",
			initData: "",
			botToken: testBotToken,
			expected: domain.ErrInitDataEmpty,
			kind:     domain.KindClientInput,
		},
		{
			name:     "empty init data wins over missing token",
			initData: "",
			botToken: "",
			expected: domain.ErrInitDataEmpty,
			kind:     domain.KindClientInput,
		},
		{
			name:     "bot token not configured",
			initData: signedAt(now, validUser),
			botToken: "",
			expected: domain.ErrBotTokenMissing,
			kind:     domain.KindConfiguration,
		},
		{
			name:     "hash missing",
			initData: "auth_date=1700000000&user=%7B%7D",
			botToken: testBotToken,
			expected: domain.ErrHashMissing,
			kind:     domain.KindClientInput,
		},
		{
			name:     "auth date missing",
			initData: "user=%7B%7D&hash=abc",
			botToken: testBotToken,
			expected: domain.ErrAuthDateMissing,
			kind:     domain.KindClientInput,
		},
		{
			name:     "auth date not numeric",
			initData: "auth_date=soon&hash=abc",
			botToken: testBotToken,
			expected: domain.ErrAuthDateInvalid,
			kind:     domain.KindClientInput,
		},
		{
			name:     "expired before signature is checked",
			initData: "auth_date=" + strconv.FormatInt(now-86460, 10) + "&hash=abc",
			botToken: testBotToken,
			expected: domain.ErrInitDataExpired,
			kind:     domain.KindAuthentication,
		},
		{
			name:     "future dated",
			initData: signedAt(now+1, validUser),
			botToken: testBotToken,
			expected: domain.ErrInitDataFuture,
			kind:     domain.KindAuthentication,
		},
		{
			name:     "bad signature",
			initData: strings.Replace(signedAt(now, validUser), "Alex", "Eve", 1),
			botToken: testBotToken,
			expected: domain.ErrSignatureInvalid,
			kind:     domain.KindAuthentication,
		},
		{
			name:     "fresh but unsigned",
			initData: "auth_date=" + strconv.FormatInt(now, 10) + "&user=%7B%22id%22%3A1%2C%22first_name%22%3A%22A%22%7D&hash=" + strings.Repeat("0", 64),
			botToken: testBotToken,
			expected: domain.ErrSignatureInvalid,
			kind:     domain.KindAuthentication,
		},
		{
			name:     "signed without user",
			initData: SignInitData(testBotToken, map[string]string{"auth_date": strconv.FormatInt(now, 10)}),
			botToken: testBotToken,
			expected: domain.ErrUserMissing,
			kind:     domain.KindClientInput,
		},
		{
			name:     "signed user without first name",
			initData: signedAt(now, `{"id":42}`),
			botToken: testBotToken,
			expected: domain.ErrUserFirstNameEmpty,
			kind:     domain.KindClientInput,
		},
	}

	v := NewVerifier(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, err := v.Verify(tt.initData, tt.botToken, domain.VerifyOptions{Now: clockAt(fixedNow)})
			assert.Nil(t, auth)
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	opts := domain.VerifyOptions{MaxAge: 86400 * time.Second, Now: clockAt(fixedNow)}
	user := `{"id":42,"first_name":"Alex"}`

	_, err := Verify(signedAt(fixedNow.Unix()-86400, user), testBotToken, opts)
	assert.NoError(t, err)

	_, err = Verify(signedAt(fixedNow.Unix()-86401, user), testBotToken, opts)
	assert.ErrorIs(t, err, domain.ErrInitDataExpired)
}

func TestVerify_PayloadIsCopied(t *testing.T) {
	raw := signedAt(fixedNow.Unix(), `{"id":42,"first_name":"Alex"}`)
	opts := domain.VerifyOptions{Now: clockAt(fixedNow)}

	first, err := Verify(raw, testBotToken, opts)
	require.NoError(t, err)
	first.Payload["query_id"] = "changed"

	second, err := Verify(raw, testBotToken, opts)
	require.NoError(t, err)
	assert.Equal(t, "query", second.Payload["query_id"])
}
