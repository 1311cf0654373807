package model

import "time"

// ProcessingStatus tracks a lecture's progress through the
// transcription/summarization pipeline.
type ProcessingStatus string

const (
	ProcessingStatusPending      ProcessingStatus = "pending"
	ProcessingStatusTranscribing ProcessingStatus = "transcribing"
	ProcessingStatusTranscribed  ProcessingStatus = "transcribed"
	ProcessingStatusSummarizing  ProcessingStatus = "summarizing"
	ProcessingStatusCompleted    ProcessingStatus = "completed"
	ProcessingStatusFailed       ProcessingStatus = "failed"
)

// LectureStatus is the publication lifecycle, independent of processing.
type LectureStatus string

const (
	LectureStatusDraft     LectureStatus = "draft"
	LectureStatusPublished LectureStatus = "published"
)

// Lecture is a recorded lecture and its derived artifacts.
//
// Audio is either an external URL or an inline blob plus MIME type. Inline
// blobs carry a generated AudioKey (the "virtual identifier") so they can be
// located when the stored reference is a pseudo-URL rather than a real one.
// Version supports optimistic concurrency on status updates.
type Lecture struct {
	ID           string
	CourseID     string
	Title        string
	AudioURL     *string
	AudioContent []byte
	AudioMime    string
	AudioKey     string
	Transcript   *string
	Summary      *string

	ProcessingStatus ProcessingStatus
	Status           LectureStatus
	Version          int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTranscript reports whether a non-empty transcript is stored.
func (l Lecture) HasTranscript() bool {
	return l.Transcript != nil && *l.Transcript != ""
}

// HasInlineAudio reports whether inline audio content is stored.
func (l Lecture) HasInlineAudio() bool {
	return len(l.AudioContent) > 0
}
