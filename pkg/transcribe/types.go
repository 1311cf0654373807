package transcribe

import "errors"

// Input is the audio source for one transcription call.
// Exactly one of URL or Data should be set; URL wins when both are.
type Input struct {
	URL      string
	Data     []byte
	Filename string
	Mime     string
}

// Config holds OpenAI transcription client configuration.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string // override for tests; defaults to the OpenAI endpoint
}

var (
	// ErrMissingAPIKey indicates the provider credentials are absent.
	// This is a configuration problem, not a provider failure.
	ErrMissingAPIKey = errors.New("transcribe: API key is not configured")

	// ErrNoAudio indicates the input carried neither a URL nor data.
	ErrNoAudio = errors.New("transcribe: no audio source provided")

	// ErrUnsupportedMime indicates the audio MIME type is not accepted.
	ErrUnsupportedMime = errors.New("transcribe: unsupported audio mime type")
)
