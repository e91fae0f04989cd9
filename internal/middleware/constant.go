package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"

	// Limiters idle this long are forgotten.
	limiterTTL = 5 * time.Minute

	defaultMaxClients = 10000
)
