package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intentHTTP "intent-gateway/internal/intent/delivery/http"
	"intent-gateway/internal/middleware"
)

// setupIntentDomain registers the dispatch endpoint on the legacy root path
// and under /api/v1.
func (srv *HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := intentHTTP.New(srv.l, srv.intentUC)

	intentHTTP.RegisterLegacyRoute(srv.gin, h, mw)
	intentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Intent domain registered at POST %s and POST /api/v1/intents/dispatch", intentHTTP.LegacyDispatchPath)
	return nil
}
