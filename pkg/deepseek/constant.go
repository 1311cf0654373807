package deepseek

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "deepseek-chat"

	// DefaultBaseURL is the DeepSeek API base.
	DefaultBaseURL = "https://api.deepseek.com"
)
