package model

import "time"

// TaskType classifies an academic task. The set is open: unknown values are
// stored as-is, these are the ones the extractor produces.
type TaskType string

const (
	TaskTypeAssignment   TaskType = "assignment"
	TaskTypeQuiz         TaskType = "quiz"
	TaskTypeReading      TaskType = "reading"
	TaskTypePresentation TaskType = "presentation"
	TaskTypeLab          TaskType = "lab"
)

// TaskPriority is ordinal: low < medium < high.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is an academic task extracted from a lecture transcript.
// CalendarEventID is an opaque reference set by the calendar collaborator;
// this service never interprets it.
type Task struct {
	ID              string
	LectureID       string
	CourseID        string
	Type            TaskType
	Title           string
	Description     string
	DueDate         *time.Time
	Priority        TaskPriority
	Completed       bool
	CalendarEventID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
