package transcribe

import "context"

// Transcriber is a pluggable speech-to-text backend.
// Implementations receive either a remote URL or raw audio bytes and return
// the plain transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, input Input) (string, error)
}
