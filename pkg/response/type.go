package response

// Resp is the standard JSON response body: {status, message, data?}.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	// LLMRawOutput carries the unparseable model text for diagnostics.
	LLMRawOutput string `json:"llm_raw_output,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"

	DefaultErrorMessage     = "Internal server error"
	TooManyRequestsMessage  = "Too many requests. Please slow down."
	RouteNotFoundMessage    = "Route not found."
	MethodNotAllowedMessage = "Method not allowed."
)
