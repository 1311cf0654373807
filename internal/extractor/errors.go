package extractor

import "errors"

// Domain-specific errors for the extractor package.
var (
	// ErrMalformedReply indicates the AI collaborator's reply could not be
	// parsed. Callers are expected to fall back to the rule-based strategy.
	ErrMalformedReply = errors.New("malformed extraction reply")

	// ErrEmptyTranscript indicates there is nothing to extract from.
	ErrEmptyTranscript = errors.New("transcript is empty")
)
