package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"intent-gateway/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "intent-gateway"

	readyCheckTimeout = 5 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, "healthy", gin.H{
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck runs every registered dependency check.
// @Summary Readiness Check
// @Description Check that the language model and Salesforce session are available
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "A dependency is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyCheckTimeout)
	defer cancel()

	checks := gin.H{}
	ready := true
	for _, rc := range srv.readyChecks {
		if err := rc.Check(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s not ready: %v", rc.Name, err)
			checks[rc.Name] = "unavailable"
			ready = false
			continue
		}
		checks[rc.Name] = "ok"
	}

	if !ready {
		response.JSON(c, http.StatusServiceUnavailable, response.Resp{
			Status:  response.StatusError,
			Message: "not ready",
			Data:    checks,
		})
		return
	}

	response.OK(c, "ready", checks)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, "alive", nil)
}
