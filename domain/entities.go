package domain

import (
	"strconv"
	"time"
)

// UserIDPrefix is prepended to the Telegram id to build the stable user id
const UserIDPrefix = "telegram:"

// TelegramUser is the user object embedded in Mini App init data
type TelegramUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

// VerifiedAuth is produced only by a successful init data verification
type VerifiedAuth struct {
	AuthDate int64
	Hash     string
	Payload  map[string]string
	User     TelegramUser
}

// AuthTime returns auth_date as a time
func (v VerifiedAuth) AuthTime() time.Time {
	return time.Unix(v.AuthDate, 0)
}

// TelegramProfile is the data the user directory upserts on each login
type TelegramProfile struct {
	TelegramID int64
	FirstName  string
	LastName   string
	Username   string
	AvatarURL  string
}

// ProfileFromTelegram maps the wire user onto the directory profile
func ProfileFromTelegram(u TelegramUser) TelegramProfile {
	return TelegramProfile{
		TelegramID: u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		AvatarURL:  u.PhotoURL,
	}
}

// User is the application's record of a Telegram user
type User struct {
	ID         string `json:"id"`
	TelegramID int64  `json:"telegramId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName,omitempty"`
	Username   string `json:"username,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

// UserIDFor returns the deterministic user id for a Telegram id
func UserIDFor(telegramID int64) string {
	return UserIDPrefix + strconv.FormatInt(telegramID, 10)
}

// NewUser creates the first record for a profile
func NewUser(p TelegramProfile) *User {
	return &User{
		ID:         UserIDFor(p.TelegramID),
		TelegramID: p.TelegramID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Username:   p.Username,
		AvatarURL:  p.AvatarURL,
	}
}

// Apply overwrites fields that p supplies with a non-empty value
func (u *User) Apply(p TelegramProfile) {
	u.FirstName = keep(p.FirstName, u.FirstName)
	u.LastName = keep(p.LastName, u.LastName)
	u.Username = keep(p.Username, u.Username)
	u.AvatarURL = keep(p.AvatarURL, u.AvatarURL)
}

func keep(next, prev string) string {
	if next != "" {
		return next
	}
	return prev
}

// AuthResult is the outcome of a successful Telegram login
type AuthResult struct {
	User         *User
	SessionToken string
	Verified     *VerifiedAuth
}

// SessionClaims are the claims carried by a session token
type SessionClaims struct {
	Subject    string
	TelegramID int64
	IssuedAt   time.Time
	ExpiresAt  time.Time
	TokenID    string
}
