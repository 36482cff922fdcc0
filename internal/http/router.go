package httpx

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Alexs779/bot-flow-vercel/internal/http/handlers"
	"github.com/Alexs779/bot-flow-vercel/internal/http/middleware"
)

const (
	AuthTelegramPath = "/api/auth/telegram"
	InvoicePath      = "/api/telegram/payments/invoice"
)

var rejectedMethods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// BuildRouter wires the public API; every POST-only route answers other methods with 405
func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.PaymentHandlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(middleware.Recovery(logger), middleware.Logging(logger), middleware.Metrics())

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	postOnly(r, AuthTelegramPath, ah.TelegramAuth)
	postOnly(r, InvoicePath, ph.CreateInvoice)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"ok":    false,
			"error": fmt.Sprintf("Route %s not found.", c.Request.URL.Path),
		})
	})

	return r
}

func postOnly(r *gin.Engine, path string, h gin.HandlerFunc) {
	r.POST(path, h)
	for _, m := range rejectedMethods {
		r.Handle(m, path, handlers.MethodNotAllowed)
	}
}
