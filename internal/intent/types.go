package intent

// Slots holds parameters extracted for an intent. Values are opaque strings;
// handlers parse them if they need anything else.
type Slots map[string]string

// Get returns the slot value, or "" when the slot is absent.
func (s Slots) Get(name string) string {
	if s == nil {
		return ""
	}
	return s[name]
}

// Result is the structured classification returned by the model.
type Result struct {
	Intent string `json:"intent"`
	Slots  Slots  `json:"slots"`
}

// HandlerResult is the normalized outcome every handler produces.
type HandlerResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// IsError reports whether the result carries an error status.
func (r HandlerResult) IsError() bool {
	return r.Status == StatusError
}

// Success builds a success result.
func Success(message string, data any) HandlerResult {
	return HandlerResult{Status: StatusSuccess, Message: message, Data: data}
}

// Failure builds an error result.
func Failure(message string) HandlerResult {
	return HandlerResult{Status: StatusError, Message: message}
}

// --- UseCase Inputs ---

type DispatchInput struct {
	Query string
}

// --- UseCase Outputs ---

type DispatchOutput struct {
	// Classification is empty when the model call or extraction failed.
	Classification Result
	Result         HandlerResult
	// Raw is the unmodified model text, kept for diagnostics.
	Raw string
}
