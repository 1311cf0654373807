package gemini

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.0-flash"

	// DefaultAPIURL is the Gemini REST endpoint base.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"
)
