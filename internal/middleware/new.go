package middleware

import (
	"time"

	"intent-gateway/config"
	"intent-gateway/internal/metrics"
	"intent-gateway/pkg/log"
)

type Middleware struct {
	l              log.Logger
	requestTimeout time.Duration
	limiter        *rateLimiter
	metrics        *metrics.Metrics
}

// New builds the middleware set. The limiter is nil when rate limiting is
// disabled; m may be nil.
func New(l log.Logger, cfg *config.Config, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:              l,
		requestTimeout: cfg.HTTPServer.RequestTimeout,
		metrics:        m,
	}
	if cfg.RateLimit.Enabled {
		mw.limiter = newRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, cfg.RateLimit.MaxClients)
	}
	return mw
}
