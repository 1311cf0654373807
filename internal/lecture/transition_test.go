package lecture

import (
	"errors"
	"testing"

	"lecture-pipeline/internal/model"
)

func TestStartTranscription(t *testing.T) {
	tests := []struct {
		name    string
		from    model.ProcessingStatus
		wantErr bool
	}{
		{name: "from pending", from: model.ProcessingStatusPending},
		{name: "retry after failure", from: model.ProcessingStatusFailed},
		{name: "already transcribing", from: model.ProcessingStatusTranscribing, wantErr: true},
		{name: "already transcribed", from: model.ProcessingStatusTranscribed, wantErr: true},
		{name: "summarizing", from: model.ProcessingStatusSummarizing, wantErr: true},
		{name: "completed", from: model.ProcessingStatusCompleted, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StartTranscription(model.Lecture{ProcessingStatus: tt.from})
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidState) {
					t.Fatalf("expected ErrInvalidState, got %v", err)
				}
				if got.ProcessingStatus != tt.from {
					t.Errorf("status changed on rejected transition: %q", got.ProcessingStatus)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ProcessingStatus != model.ProcessingStatusTranscribing {
				t.Errorf("status = %q, want transcribing", got.ProcessingStatus)
			}
		})
	}
}

func TestFinishTranscription(t *testing.T) {
	l := model.Lecture{ProcessingStatus: model.ProcessingStatusTranscribing}

	got, err := FinishTranscription(l, "lecture body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProcessingStatus != model.ProcessingStatusTranscribed {
		t.Errorf("status = %q, want transcribed", got.ProcessingStatus)
	}
	if got.Transcript == nil || *got.Transcript != "lecture body" {
		t.Errorf("transcript not recorded: %v", got.Transcript)
	}

	if _, err := FinishTranscription(l, ""); !errors.Is(err, ErrEmptyTranscript) {
		t.Errorf("empty transcript: expected ErrEmptyTranscript, got %v", err)
	}
}

func TestStartSummary(t *testing.T) {
	transcript := "some transcript"

	// No transcript: rejected regardless of status, status untouched.
	l := model.Lecture{ProcessingStatus: model.ProcessingStatusTranscribed}
	got, err := StartSummary(l)
	if !errors.Is(err, ErrEmptyTranscript) {
		t.Fatalf("expected ErrEmptyTranscript, got %v", err)
	}
	if got.ProcessingStatus != model.ProcessingStatusTranscribed {
		t.Errorf("status changed on rejected transition: %q", got.ProcessingStatus)
	}

	// Transcript present: allowed even from completed (re-summarization).
	for _, from := range []model.ProcessingStatus{
		model.ProcessingStatusTranscribed,
		model.ProcessingStatusCompleted,
		model.ProcessingStatusFailed,
	} {
		got, err := StartSummary(model.Lecture{ProcessingStatus: from, Transcript: &transcript})
		if err != nil {
			t.Fatalf("from %q: unexpected error: %v", from, err)
		}
		if got.ProcessingStatus != model.ProcessingStatusSummarizing {
			t.Errorf("from %q: status = %q, want summarizing", from, got.ProcessingStatus)
		}
	}
}

func TestFinishSummary(t *testing.T) {
	transcript := "t"
	l := model.Lecture{ProcessingStatus: model.ProcessingStatusSummarizing, Transcript: &transcript}

	got, err := FinishSummary(l, "key points")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProcessingStatus != model.ProcessingStatusCompleted {
		t.Errorf("status = %q, want completed", got.ProcessingStatus)
	}
	if got.Summary == nil || *got.Summary != "key points" {
		t.Errorf("summary not recorded: %v", got.Summary)
	}
}

func TestMarkFailed(t *testing.T) {
	transcript := "kept"
	got := MarkFailed(model.Lecture{
		ProcessingStatus: model.ProcessingStatusTranscribing,
		Transcript:       &transcript,
	})
	if got.ProcessingStatus != model.ProcessingStatusFailed {
		t.Errorf("status = %q, want failed", got.ProcessingStatus)
	}
	if got.Transcript == nil {
		t.Error("transcript cleared on failure")
	}
}
