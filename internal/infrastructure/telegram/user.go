package telegram

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// ParseUser decodes and validates the user field of init data
func ParseUser(raw string) (domain.TelegramUser, error) {
	if raw == "" {
		return domain.TelegramUser{}, domain.ErrUserMissing
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		// valid JSON that is not an object
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return domain.TelegramUser{}, domain.ErrUserMalformed
		}
		return domain.TelegramUser{}, domain.ErrUserInvalidJSON
	}
	if dec.More() {
		return domain.TelegramUser{}, domain.ErrUserInvalidJSON
	}
	if fields == nil {
		return domain.TelegramUser{}, domain.ErrUserMalformed
	}

	num, ok := fields["id"].(json.Number)
	if !ok {
		return domain.TelegramUser{}, domain.ErrUserIDMissing
	}
	id, err := num.Int64()
	if err != nil {
		return domain.TelegramUser{}, domain.ErrUserIDMissing
	}

	firstName, _ := fields["first_name"].(string)
	if firstName == "" {
		return domain.TelegramUser{}, domain.ErrUserFirstNameEmpty
	}

	return domain.TelegramUser{
		ID:           id,
		FirstName:    firstName,
		LastName:     optionalString(fields, "last_name"),
		Username:     optionalString(fields, "username"),
		LanguageCode: optionalString(fields, "language_code"),
		PhotoURL:     optionalString(fields, "photo_url"),
	}, nil
}

func optionalString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
