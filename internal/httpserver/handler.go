package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"intent-gateway/internal/middleware"
	"intent-gateway/internal/model"
	"intent-gateway/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.config, srv.metrics)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		err := fmt.Errorf("panic: %v", rec)
		srv.l.Errorf(c.Request.Context(), "httpserver.Recovery: %v", err)
		response.InternalError(c, err)
	}))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())

	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoRoute(response.NotFound)
	srv.gin.NoMethod(response.MethodNotAllowed)

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	api := srv.gin.Group("/api/v1")

	return srv.setupIntentDomain(context.Background(), api, mw)
}
