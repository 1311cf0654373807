package lecture

import (
	"context"

	"lecture-pipeline/internal/model"
)

// UseCase exposes every lecture-domain operation to the delivery layer.
type UseCase interface {
	CreateLecture(ctx context.Context, input CreateLectureInput) (model.Lecture, error)
	GetLecture(ctx context.Context, id string) (model.Lecture, error)
	ListLectures(ctx context.Context, input ListLecturesInput) ([]model.Lecture, error)
	AttachAudio(ctx context.Context, input AttachAudioInput) (model.Lecture, error)
	Transcribe(ctx context.Context, input TranscribeInput) (model.Lecture, error)
	Summarize(ctx context.Context, input SummarizeInput) (model.Lecture, error)
	ExtractTasks(ctx context.Context, input ExtractTasksInput) ([]model.Task, error)
	ListTasks(ctx context.Context, lectureID string) ([]model.Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (model.Task, error)
	ScheduleTask(ctx context.Context, taskID string) (model.Task, error)
}

// Scheduler pushes a task to an external calendar and returns the opaque
// event identifier assigned by the remote system.
type Scheduler interface {
	ScheduleTask(ctx context.Context, task model.Task) (string, error)
}
