package http

import (
	"github.com/gin-gonic/gin"

	"intent-gateway/internal/middleware"
)

// RegisterRoutes maps the dispatch endpoint under rg (POST /intents/dispatch).
// The legacy root path is registered separately with RegisterLegacyRoute.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	intents := rg.Group("/intents")
	{
		intents.POST("/dispatch", mw.RateLimit(), mw.Timeout(), h.Dispatch)
	}
}

// RegisterLegacyRoute exposes POST /mcp_gateway on the engine root.
func RegisterLegacyRoute(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST(LegacyDispatchPath, mw.RateLimit(), mw.Timeout(), h.Dispatch)
}
