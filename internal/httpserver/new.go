package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"intent-gateway/config"
	"intent-gateway/internal/intent"
	"intent-gateway/internal/metrics"
	"intent-gateway/pkg/log"
)

// ReadyCheck reports whether one dependency can serve traffic.
type ReadyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	readTimeout  time.Duration
	writeTimeout time.Duration
	config       *config.Config

	// Intent domain
	intentUC intent.UseCase

	metrics     *metrics.Metrics
	readyChecks []ReadyCheck
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger       log.Logger
	Port         int
	Mode         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AppConfig feeds the middleware (rate limit, request timeout).
	AppConfig *config.Config

	// Intent domain
	IntentUseCase intent.UseCase

	Metrics     *metrics.Metrics
	ReadyChecks []ReadyCheck
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		config:       cfg.AppConfig,
		intentUC:     cfg.IntentUseCase,
		metrics:      cfg.Metrics,
		readyChecks:  cfg.ReadyChecks,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("app config is required")
	}
	if srv.intentUC == nil {
		return errors.New("intent use case is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
