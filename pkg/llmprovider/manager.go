package llmprovider

import (
	"context"
	"time"

	"intent-gateway/pkg/log"
)

// Manager sends each request to the highest-priority provider exactly once.
// Lower-priority providers are kept for reporting only; there is no retry and
// no fallback.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	// Timeout bounds a single provider call. Zero leaves the caller's deadline in charge.
	Timeout     time.Duration
	Temperature float64
	JSONMode    bool
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Primary returns the provider that serves requests, or nil.
func (m *Manager) Primary() Provider {
	if len(m.providers) == 0 {
		return nil
	}
	return m.providers[0]
}

// GenerateContent performs a single call against the primary provider.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	provider := m.Primary()
	if provider == nil {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	if req.Temperature == 0 {
		req.Temperature = m.config.Temperature
	}
	if m.config.JSONMode {
		req.JSONMode = true
	}

	resp, err := provider.GenerateContent(ctx, req)
	if err != nil {
		m.logFailure(ctx, provider, err)
		return nil, err
	}

	m.logSuccess(ctx, provider, resp)
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
