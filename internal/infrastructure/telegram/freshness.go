package telegram

import (
	"strconv"
	"time"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// DefaultMaxAge is how long init data stays acceptable after auth_date
const DefaultMaxAge = 24 * time.Hour

// ParseAuthDate reads auth_date as integer unix seconds
func ParseAuthDate(payload InitDataPayload) (int64, error) {
	raw, ok := payload[fieldAuthDate]
	if !ok || raw == "" {
		return 0, domain.ErrAuthDateMissing
	}
	authDate, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrAuthDateInvalid
	}
	return authDate, nil
}

// CheckFreshness rejects auth dates older than maxAge or in the future.
// An age equal to maxAge is accepted.
func CheckFreshness(authDate int64, maxAge time.Duration, now func() time.Time) error {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if now == nil {
		now = time.Now
	}

	age := now().Unix() - authDate
	if age > int64(maxAge/time.Second) {
		return domain.ErrInitDataExpired
	}
	if age < 0 {
		return domain.ErrInitDataFuture
	}
	return nil
}
