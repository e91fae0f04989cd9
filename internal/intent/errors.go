package intent

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrModelUnavailable  = errors.New("model unavailable")
	ErrModelRejected     = errors.New("model rejected the request")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrMissingIntent     = errors.New("model response missing intent")
	ErrUnknownIntent     = errors.New("unknown intent")
	ErrDownstreamFault   = errors.New("downstream fault")
	ErrStartupFailure    = errors.New("startup failure")
)

// ExtractError reports a model response that failed the extraction contract.
// Raw holds the text as received.
type ExtractError struct {
	Kind error
	Raw  string
	Err  error
}

func (e *ExtractError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *ExtractError) Is(target error) bool {
	return target == e.Kind
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// ModelError reports a failed model call. Kind is ErrModelUnavailable or
// ErrModelRejected.
type ModelError struct {
	Kind error
	Err  error
}

func (e *ModelError) Error() string {
	return e.Err.Error()
}

func (e *ModelError) Is(target error) bool {
	return target == e.Kind
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// StartupError wraps a condition that must stop the process from serving.
func StartupError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStartupFailure, fmt.Sprintf(format, args...))
}
