package handlers

import (
	"intent-gateway/internal/intent"
	"intent-gateway/internal/router"
	"intent-gateway/pkg/log"
)

// Registrations returns the intent table served by the gateway.
func Registrations(l log.Logger) []router.Registration {
	return []router.Registration{
		{Intent: intent.IntentGetProducts, Handler: NewProducts(l)},
		{Intent: intent.IntentUnsupportedRequest, Handler: NewUnsupported(l)},
	}
}
