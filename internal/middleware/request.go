package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intent-gateway/pkg/log"
)

// RequestID propagates X-Request-ID, generating one when the caller sent none,
// and attaches it to the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(HeaderRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request and feeds the HTTP metrics.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		m.metrics.ObserveHTTP(route, c.Request.Method, strconv.Itoa(code), elapsed)

		m.l.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", code,
			"latency_ms", elapsed.Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// Timeout bounds the request context by http_server.request_timeout.
// Outbound calls observe the deadline; the handler still writes the response.
func (m Middleware) Timeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.requestTimeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), m.requestTimeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
