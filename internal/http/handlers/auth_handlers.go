package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

const (
	tmaScheme        = "tma "
	authFailedMsg    = "Failed to authorize Telegram user."
	methodNotAllowed = "Method not allowed."
)

// AuthHandlers handles Telegram Mini App login
type AuthHandlers struct {
	authSvc domain.AuthService
	logger  *zap.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, logger *zap.Logger) *AuthHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandlers{authSvc: authSvc, logger: logger}
}

// TelegramAuthRequest is the JSON body of the login call
type TelegramAuthRequest struct {
	InitData string `json:"initData"`
}

// TelegramAuth exchanges signed init data for a session token
func (h *AuthHandlers) TelegramAuth(c *gin.Context) {
	initData := initDataFromRequest(c)

	result, err := h.authSvc.AuthenticateTelegram(c.Request.Context(), initData)
	if err != nil {
		writeError(c, h.logger, err, authFailedMsg)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"sessionToken": result.SessionToken,
		"user":         result.User,
	})
}

// initDataFromRequest prefers "Authorization: tma <initData>" over the JSON body
func initDataFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) >= len(tmaScheme) && strings.EqualFold(header[:len(tmaScheme)], tmaScheme) {
		return strings.TrimSpace(header[len(tmaScheme):])
	}

	var req TelegramAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return ""
	}
	return req.InitData
}

// writeError maps classified errors to their status and hides everything else
func writeError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	status := domain.StatusOf(err)
	message := fallback
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		message = ae.Message
	} else {
		logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"ok": false, "error": message})
}

// MethodNotAllowed answers non-POST calls on POST-only routes
func MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": methodNotAllowed})
}

// Health reports liveness
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
