package repository

import (
	"time"

	"lecture-pipeline/internal/model"
)

// CreateLectureOptions holds parameters for inserting a new Lecture.
// Audio fields may all be empty; they can be attached after creation.
type CreateLectureOptions struct {
	ID           string
	CourseID     string
	Title        string
	AudioURL     *string
	AudioContent []byte
	AudioMime    string
	AudioKey     string
}

// GetOneLectureOptions holds filter parameters for fetching a single Lecture.
// All non-empty fields are applied as AND conditions.
type GetOneLectureOptions struct {
	ID       string
	AudioKey string
}

// ListLecturesOptions holds filter parameters for listing Lectures.
type ListLecturesOptions struct {
	CourseID       string
	HasInlineAudio bool
	Limit          int
	Offset         int
}

// UpdateLectureOptions holds parameters for a version-checked lecture update.
// Version must carry the value read before the update; the row is only
// written when the stored version still matches.
type UpdateLectureOptions struct {
	ID               string
	Version          int
	ProcessingStatus model.ProcessingStatus
	Transcript       *string
	Summary          *string
}

// UpdateLectureAudioOptions attaches or replaces a lecture's audio fields.
type UpdateLectureAudioOptions struct {
	ID           string
	AudioURL     *string
	AudioContent []byte
	AudioMime    string
	AudioKey     string
}

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID          string
	LectureID   string
	CourseID    string
	Type        model.TaskType
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.TaskPriority
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter parameters for listing Tasks.
type ListTasksOptions struct {
	LectureID string
	CourseID  string
}

// UpdateTaskOptions holds parameters for a partial task update.
// Nil pointer fields are left unchanged.
type UpdateTaskOptions struct {
	ID              string
	Completed       *bool
	CalendarEventID *string
}
