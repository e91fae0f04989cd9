package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrBlocked indicates the prompt or the answer was withheld by safety filters.
	ErrBlocked = errors.New("gemini: content blocked")

	// ErrEmptyResponse indicates no candidate text was returned.
	ErrEmptyResponse = errors.New("gemini: empty response")

	// ErrAPIKeyRequired indicates a missing API key.
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
)

// APIError is a non-200 answer from the Gemini API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}

// BlockedError carries the reason reported by the API.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("gemini: content blocked: %s", e.Reason)
}

func (e *BlockedError) Is(target error) bool {
	return target == ErrBlocked
}
