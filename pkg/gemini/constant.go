package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-1.5-flash-latest"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	headerAPIKey = "x-goog-api-key"
)

// Finish reasons and block reasons reported when content is withheld.
const (
	FinishReasonStop       = "STOP"
	FinishReasonSafety     = "SAFETY"
	FinishReasonRecitation = "RECITATION"
	FinishReasonBlocklist  = "BLOCKLIST"
	FinishReasonProhibited = "PROHIBITED_CONTENT"
	FinishReasonSPII       = "SPII"
)
