package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderUnavailable covers transport, auth and quota failures
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrContentBlocked indicates the provider withheld content on policy grounds
	ErrContentBlocked = errors.New("content blocked by provider")
)

// ProviderError wraps provider-specific errors with a classification.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func unavailable(provider string, err error) error {
	return &ProviderError{Provider: provider, Kind: ErrProviderUnavailable, Err: err}
}

func blocked(provider string, err error) error {
	return &ProviderError{Provider: provider, Kind: ErrContentBlocked, Err: err}
}
