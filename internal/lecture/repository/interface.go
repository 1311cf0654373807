package repository

import (
	"context"

	"lecture-pipeline/internal/model"
)

// Repository is the composed interface for the lecture domain data store.
type Repository interface {
	LectureRepository
	TaskRepository
}

// LectureRepository defines all data access methods for the Lecture entity.
type LectureRepository interface {
	CreateLecture(ctx context.Context, opt CreateLectureOptions) (model.Lecture, error)
	GetOneLecture(ctx context.Context, opt GetOneLectureOptions) (model.Lecture, error)
	ListLectures(ctx context.Context, opt ListLecturesOptions) ([]model.Lecture, error)
	UpdateLecture(ctx context.Context, opt UpdateLectureOptions) (model.Lecture, error)
	UpdateLectureAudio(ctx context.Context, opt UpdateLectureAudioOptions) (model.Lecture, error)
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
}
