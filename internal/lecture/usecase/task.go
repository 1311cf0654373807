package usecase

import (
	"context"
	"fmt"

	"lecture-pipeline/internal/lecture"
	repo "lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/internal/model"
)

// ListTasks returns the tasks extracted from one lecture, in extraction order.
func (uc *implUseCase) ListTasks(ctx context.Context, lectureID string) ([]model.Task, error) {
	if _, err := uc.GetLecture(ctx, lectureID); err != nil {
		return nil, err
	}
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{LectureID: lectureID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// UpdateTask applies a partial update to one task.
func (uc *implUseCase) UpdateTask(ctx context.Context, input lecture.UpdateTaskInput) (model.Task, error) {
	task, err := uc.getTask(ctx, input.TaskID)
	if err != nil {
		return model.Task{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        task.ID,
		Completed: input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask UpdateTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

// ScheduleTask pushes a task with a due date to the external calendar and
// stores the opaque event identifier it returns.
func (uc *implUseCase) ScheduleTask(ctx context.Context, taskID string) (model.Task, error) {
	task, err := uc.getTask(ctx, taskID)
	if err != nil {
		return model.Task{}, err
	}
	if task.DueDate == nil {
		return model.Task{}, lecture.ErrNotSchedulable
	}
	if uc.scheduler == nil {
		return model.Task{}, fmt.Errorf("%w: calendar", lecture.ErrConfiguration)
	}

	eventID, err := uc.scheduler.ScheduleTask(ctx, task)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleTask ScheduleTask: %v", err)
		return model.Task{}, fmt.Errorf("%w: %v", lecture.ErrProvider, err)
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              task.ID,
		CalendarEventID: &eventID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleTask UpdateTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask GetOneTask: %v", err)
		return model.Task{}, err
	}
	if task.ID == "" {
		return model.Task{}, lecture.ErrTaskNotFound
	}
	return task, nil
}
