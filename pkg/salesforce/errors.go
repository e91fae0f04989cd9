package salesforce

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMalformedQuery is returned when Salesforce rejects the SOQL text.
	ErrMalformedQuery = errors.New("salesforce: malformed query")
	// ErrSessionExpired is returned when the access token is no longer valid.
	ErrSessionExpired = errors.New("salesforce: session expired")
	// ErrAPIFault covers every other non-success answer.
	ErrAPIFault = errors.New("salesforce: api fault")
	// ErrAuthFailed is returned when a session cannot be obtained.
	ErrAuthFailed = errors.New("salesforce: authentication failed")
	// ErrMissingCredentials is returned by New when the config is incomplete.
	ErrMissingCredentials = errors.New("salesforce: missing credentials")
)

// APIError is a non-2xx answer from the REST API.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	if e.ErrorCode == "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrSessionExpired:
		return e.StatusCode == http.StatusUnauthorized || e.ErrorCode == CodeInvalidSessionID
	case ErrMalformedQuery:
		return e.ErrorCode == CodeMalformedQuery || e.ErrorCode == CodeInvalidField || e.ErrorCode == CodeInvalidType
	case ErrAPIFault:
		return true
	}
	return false
}

// AuthError wraps a failed token request.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("salesforce: authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() []error {
	return []error{ErrAuthFailed, e.Err}
}
