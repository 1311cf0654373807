package lecture

// SummaryEngine selects which summarization collaborator handles a request.
type SummaryEngine string

const (
	EnginePrimary   SummaryEngine = "primary"
	EngineSecondary SummaryEngine = "secondary"
)

// CreateLectureInput is the input for creating a lecture.
// Audio is optional at creation time: either an external URL or an inline
// base64 blob plus MIME type, or nothing (attached later).
type CreateLectureInput struct {
	CourseID     string
	Title        string
	ExternalURL  string
	AudioContent []byte
	AudioMime    string
}

// AttachAudioInput attaches audio to an existing lecture after creation.
type AttachAudioInput struct {
	LectureID    string
	ExternalURL  string
	AudioContent []byte
	AudioMime    string
}

// TranscribeInput is the input for the transcription transition.
// A non-empty ManualTranscript bypasses audio resolution and the
// transcription adapter entirely.
type TranscribeInput struct {
	LectureID        string
	ManualTranscript string
}

// SummarizeInput is the input for the summarization transition.
type SummarizeInput struct {
	LectureID string
	Engine    SummaryEngine
}

// ExtractTasksInput is the input for task extraction.
// UseFallback opts in to recovering from a malformed AI reply with the
// rule-based strategy instead of surfacing the parse error.
type ExtractTasksInput struct {
	LectureID   string
	UseFallback bool
}

// ListLecturesInput filters the lecture listing.
type ListLecturesInput struct {
	CourseID string
}

// UpdateTaskInput is a partial task update.
type UpdateTaskInput struct {
	TaskID    string
	Completed *bool
}
