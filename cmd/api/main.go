package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/redis/go-redis/v9"

	"intent-gateway/config"
	_ "intent-gateway/docs" // Swagger docs
	"intent-gateway/internal/handlers"
	"intent-gateway/internal/httpserver"
	"intent-gateway/internal/intent"
	"intent-gateway/internal/intent/usecase"
	"intent-gateway/internal/metrics"
	"intent-gateway/internal/router"
	"intent-gateway/pkg/llmprovider"
	"intent-gateway/pkg/log"
	"intent-gateway/pkg/salesforce"
)

// @title       Intent Gateway API
// @description Natural-language gateway that classifies queries with an LLM and dispatches them to Salesforce Revenue Cloud handlers.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intent Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, intent.ErrStartupFailure) {
			logger.Errorf(ctx, "Refusing to serve: %v", err)
		} else {
			logger.Errorf(ctx, "Server error: %v", err)
		}
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	m := metrics.New()

	// 3. Intent schema
	schema, err := intent.LoadSchema(cfg.Intents.SchemaPath)
	if err != nil {
		return intent.StartupError("load intent schema %s: %v", cfg.Intents.SchemaPath, err)
	}
	logger.Infof(ctx, "Loaded %d intents from %s", len(schema.Intents), cfg.Intents.SchemaPath)

	// 4. Language model
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return intent.StartupError("initialize LLM providers: %v", err)
	}
	var temperature float64
	if p, ok := cfg.LLM.Primary(); ok {
		temperature = p.Temperature
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		Timeout:     cfg.LLM.CallTimeout,
		Temperature: temperature,
		JSONMode:    cfg.LLM.JSONMode,
	}, logger)
	primary := manager.Primary()
	logger.Infof(ctx, "LLM provider: %s (%s)", primary.Name(), primary.Model())

	// 5. Salesforce session
	var store salesforce.SessionStore
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return intent.StartupError("connect redis %s: %v", cfg.Redis.Addr, err)
		}
		store = salesforce.NewRedisStore(rdb, cfg.Redis.KeyPrefix)
		logger.Infof(ctx, "Salesforce sessions shared through redis at %s", cfg.Redis.Addr)
	}

	sfConfig := salesforce.Config{
		Domain:       cfg.Salesforce.Domain,
		ClientID:     cfg.Salesforce.ClientID,
		ClientSecret: cfg.Salesforce.ClientSecret,
		Username:     cfg.Salesforce.Username,
		Password:     cfg.Salesforce.Password,
		APIVersion:   cfg.Salesforce.APIVersion,
		Timeout:      cfg.Salesforce.Timeout,
	}
	auth, err := salesforce.NewAuthenticator(sfConfig, store, logger)
	if err != nil {
		return intent.StartupError("salesforce: %v", err)
	}
	sfClient := salesforce.New(auth, sfConfig, logger)
	if err := sfClient.Authenticate(ctx); err != nil {
		return intent.StartupError("salesforce authentication: %v", err)
	}
	logger.Info(ctx, "Salesforce initial authentication check successful")

	// 6. Intent router
	intentRouter, err := router.New(handlers.Registrations(logger), logger)
	if err != nil {
		return intent.StartupError("build intent router: %v", err)
	}
	warnSchemaMismatch(ctx, logger, schema, intentRouter.Intents())

	// 7. Use case
	classifier := usecase.NewClassifier(logger, manager, m)
	intentUC := usecase.New(logger, classifier, schema, intentRouter, sfClient, m)

	// 8. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		ReadTimeout:   cfg.HTTPServer.ReadTimeout,
		WriteTimeout:  cfg.HTTPServer.WriteTimeout,
		AppConfig:     cfg,
		IntentUseCase: intentUC,
		Metrics:       m,
		ReadyChecks: []httpserver.ReadyCheck{
			{Name: "llm", Check: func(context.Context) error {
				if manager.Primary() == nil {
					return llmprovider.ErrNoProvidersConfigured
				}
				return nil
			}},
			{Name: "salesforce", Check: func(ctx context.Context) error {
				_, err := auth.Session(ctx)
				return err
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 9. Run
	return httpServer.Run(ctx)
}

// warnSchemaMismatch flags intents the model may emit that have no handler,
// and handlers the model is never told about.
func warnSchemaMismatch(ctx context.Context, l log.Logger, schema *intent.Schema, registered []string) {
	for _, name := range schema.Names() {
		if !slices.Contains(registered, name) {
			l.Warnf(ctx, "Intent %s is in the schema but has no handler; it will be reported as unsupported", name)
		}
	}
	for _, name := range registered {
		if !schema.Has(name) {
			l.Warnf(ctx, "Handler %s is registered but missing from the schema; the model will never select it", name)
		}
	}
}
