package lecture

import (
	"fmt"

	"lecture-pipeline/internal/model"
)

// The transition functions below are pure: each takes a lecture value,
// validates the precondition against the current processing status and
// returns an updated copy. Persistence is the caller's concern.

// StartTranscription moves a lecture into the transcribing state.
// Only pending and failed lectures may enter transcription; failed is a
// re-entry point, not a terminal state.
func StartTranscription(l model.Lecture) (model.Lecture, error) {
	switch l.ProcessingStatus {
	case model.ProcessingStatusPending, model.ProcessingStatusFailed:
		l.ProcessingStatus = model.ProcessingStatusTranscribing
		return l, nil
	default:
		return l, fmt.Errorf("%w: cannot transcribe from %q", ErrInvalidState, l.ProcessingStatus)
	}
}

// FinishTranscription records the transcript and marks the lecture
// transcribed. An empty transcript is rejected so the summarization
// precondition can rely on transcript presence alone.
func FinishTranscription(l model.Lecture, transcript string) (model.Lecture, error) {
	if transcript == "" {
		return l, ErrEmptyTranscript
	}
	l.Transcript = &transcript
	l.ProcessingStatus = model.ProcessingStatusTranscribed
	return l, nil
}

// StartSummary moves a lecture into the summarizing state. The only
// precondition is a non-empty transcript; a completed lecture may be
// summarized again.
func StartSummary(l model.Lecture) (model.Lecture, error) {
	if !l.HasTranscript() {
		return l, ErrEmptyTranscript
	}
	l.ProcessingStatus = model.ProcessingStatusSummarizing
	return l, nil
}

// FinishSummary records the summary and marks the lecture completed.
func FinishSummary(l model.Lecture, summary string) (model.Lecture, error) {
	if summary == "" {
		return l, fmt.Errorf("%w: summary", ErrEmptyTranscript)
	}
	l.Summary = &summary
	l.ProcessingStatus = model.ProcessingStatusCompleted
	return l, nil
}

// MarkFailed records a processing failure. Valid from any state.
func MarkFailed(l model.Lecture) model.Lecture {
	l.ProcessingStatus = model.ProcessingStatusFailed
	return l
}
