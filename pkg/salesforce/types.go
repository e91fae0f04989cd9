package salesforce

import (
	"net/http"
	"time"
)

// Config holds connected-app credentials for the username-password flow.
type Config struct {
	// Domain is the login host, e.g. https://login.salesforce.com
	Domain       string
	ClientID     string
	ClientSecret string
	Username     string
	// Password is the user password with the security token appended.
	Password   string
	APIVersion string
	Timeout    time.Duration
	SessionTTL time.Duration
	HTTPClient *http.Client
}

// Session is an authenticated handle: a bearer token and the org instance.
type Session struct {
	AccessToken string    `json:"access_token"`
	InstanceURL string    `json:"instance_url"`
	IssuedAt    time.Time `json:"issued_at"`
}

// QueryResult is the body of a SOQL query response.
type QueryResult struct {
	TotalSize      int      `json:"totalSize"`
	Done           bool     `json:"done"`
	NextRecordsURL string   `json:"nextRecordsUrl,omitempty"`
	Records        []Record `json:"records"`
}

// Record is a single row keyed by API field name. Null fields are kept as nil.
type Record map[string]any

// String returns the field as a string pointer, nil when absent or null.
func (r Record) String(field string) *string {
	v, ok := r[field]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// apiErrorBody is one element of the error array Salesforce returns.
type apiErrorBody struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}
