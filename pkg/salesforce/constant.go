package salesforce

import "time"

const (
	// DefaultAPIVersion is the REST API version used for queries.
	DefaultAPIVersion = "v61.0"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultSessionTTL bounds how long a stored session is reused. Salesforce
	// does not return expires_in for the password flow.
	DefaultSessionTTL = 90 * time.Minute

	tokenPath = "/services/oauth2/token"
	queryPath = "/services/data/%s/query"

	sessionKey = "salesforce:session"
)

// Salesforce REST error codes.
const (
	CodeInvalidSessionID = "INVALID_SESSION_ID"
	CodeMalformedQuery   = "MALFORMED_QUERY"
	CodeInvalidField     = "INVALID_FIELD"
	CodeInvalidType      = "INVALID_TYPE"
)
