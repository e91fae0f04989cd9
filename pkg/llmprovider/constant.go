package llmprovider

const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"

	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"

	// geminiModelRole is Gemini's name for the assistant role.
	geminiModelRole = "model"
)
