package extractor

import (
	"context"
	"time"
)

// Strategy produces an ordered list of task drafts from a transcript.
// now is the reference date for resolving relative due-date phrases;
// passing it in keeps extraction deterministic and testable.
type Strategy interface {
	Extract(ctx context.Context, transcript string, now time.Time) ([]TaskDraft, error)
}
