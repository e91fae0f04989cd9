package deepseek

import (
	"errors"
	"fmt"
)

var (
	// ErrAPIKeyRequired indicates a missing API key.
	ErrAPIKeyRequired = errors.New("deepseek: API key is required")

	// ErrContentFiltered indicates the answer was withheld by the content filter.
	ErrContentFiltered = errors.New("deepseek: content filtered")

	// ErrEmptyResponse indicates a reply without any choice.
	ErrEmptyResponse = errors.New("deepseek: empty response")
)

// APIError is a non-200 answer from the DeepSeek API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deepseek: API error %d: %s", e.StatusCode, e.Message)
}
