package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// webAppDataKey is the HMAC key used to derive the per-bot secret
const webAppDataKey = "WebAppData"

// SecretKey derives HMAC_SHA256(key="WebAppData", message=botToken)
func SecretKey(botToken string) []byte {
	return hmacSHA256([]byte(webAppDataKey), []byte(botToken))
}

// Signature computes the lowercase hex hash Telegram would attach to payload
func Signature(botToken string, payload InitDataPayload) string {
	return hex.EncodeToString(hmacSHA256(SecretKey(botToken), []byte(payload.DataCheckString())))
}

// VerifySignature checks the payload hash against botToken in constant time
func VerifySignature(botToken string, payload InitDataPayload) error {
	if botToken == "" {
		return domain.ErrBotTokenMissing
	}
	supplied := payload.Hash()
	if supplied == "" {
		return domain.ErrHashMissing
	}

	given, err := hex.DecodeString(supplied)
	if err != nil {
		return domain.ErrSignatureInvalid
	}
	expected := hmacSHA256(SecretKey(botToken), []byte(payload.DataCheckString()))
	if !hmac.Equal(expected, given) {
		return domain.ErrSignatureInvalid
	}
	return nil
}

// SignInitData encodes fields as init data signed with botToken.
// Any hash in fields is replaced.
func SignInitData(botToken string, fields map[string]string) string {
	payload := make(InitDataPayload, len(fields))
	for k, v := range fields {
		if k == fieldHash {
			continue
		}
		payload[k] = v
	}

	values := url.Values{}
	for k, v := range payload {
		values.Set(k, v)
	}
	values.Set(fieldHash, Signature(botToken, payload))
	return values.Encode()
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
