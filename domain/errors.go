package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a rejection so the HTTP boundary can map it to a status code
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindClientInput
	KindAuthentication
	KindConfiguration
)

var kindStatus = map[ErrorKind]int{
	KindClientInput:    http.StatusBadRequest,
	KindAuthentication: http.StatusUnauthorized,
	KindConfiguration:  http.StatusInternalServerError,
	KindUnexpected:     http.StatusInternalServerError,
}

// String returns the metric/log label of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindClientInput:
		return "client_input"
	case KindAuthentication:
		return "authentication"
	case KindConfiguration:
		return "configuration"
	default:
		return "unexpected"
	}
}

// AuthError is a classified rejection raised by the verification pipeline
type AuthError struct {
	Kind    ErrorKind
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// StatusCode returns the HTTP status hint carried by the error
func (e *AuthError) StatusCode() int {
	if code, ok := kindStatus[e.Kind]; ok {
		return code
	}
	return http.StatusInternalServerError
}

func newAuthError(kind ErrorKind, msg string) *AuthError {
	return &AuthError{Kind: kind, Message: msg}
}

// KindOf returns the kind of the first AuthError in err's chain, KindUnexpected otherwise
func KindOf(err error) ErrorKind {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnexpected
}

// StatusOf returns the HTTP status for err
func StatusOf(err error) int {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.StatusCode()
	}
	return http.StatusInternalServerError
}

// Init data input errors
var (
	ErrInitDataEmpty      = newAuthError(KindClientInput, "initData must be a non-empty string.")
	ErrHashMissing        = newAuthError(KindClientInput, "Telegram init data hash is missing.")
	ErrAuthDateMissing    = newAuthError(KindClientInput, "Telegram auth_date field is missing.")
	ErrAuthDateInvalid    = newAuthError(KindClientInput, "Telegram auth_date field is invalid.")
	ErrUserMissing        = newAuthError(KindClientInput, "Telegram user payload is missing.")
	ErrUserInvalidJSON    = newAuthError(KindClientInput, "Telegram user payload is not valid JSON.")
	ErrUserMalformed      = newAuthError(KindClientInput, "Telegram user payload is malformed.")
	ErrUserIDMissing      = newAuthError(KindClientInput, "Telegram user id is missing.")
	ErrUserFirstNameEmpty = newAuthError(KindClientInput, "Telegram user first name is missing.")
)

// Trust errors
var (
	ErrInitDataExpired  = newAuthError(KindAuthentication, "Telegram auth data is expired.")
	ErrInitDataFuture   = newAuthError(KindAuthentication, "Telegram auth_date is in the future.")
	ErrSignatureInvalid = newAuthError(KindAuthentication, "Telegram auth signature is invalid.")
)

// Session errors
var (
	ErrSessionInvalid = newAuthError(KindAuthentication, "Session token is invalid.")
	ErrSessionExpired = newAuthError(KindAuthentication, "Session token has expired.")
)

// Payment errors
var (
	ErrInvoiceRequestInvalid = newAuthError(KindClientInput, "Missing required parameters: sessionToken, moveId")
)

// Configuration errors
var (
	ErrBotTokenMissing      = newAuthError(KindConfiguration, "Telegram bot token is not configured.")
	ErrSessionSecretMissing = newAuthError(KindConfiguration, "JWT secret is not configured.")
)
