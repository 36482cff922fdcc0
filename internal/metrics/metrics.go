// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP responses by route and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "The total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// RequestDuration observes HTTP handling time
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "The request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// TelegramAuthTotal counts Telegram login attempts by outcome
	TelegramAuthTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "telegram_auth_attempts_total",
		Help: "The total number of Telegram init data authentications",
	}, []string{"outcome"})
)

// OutcomeOK labels a successful authentication
const OutcomeOK = "ok"

// ObserveAuth records one authentication outcome
func ObserveAuth(outcome string) {
	TelegramAuthTotal.WithLabelValues(outcome).Inc()
}
