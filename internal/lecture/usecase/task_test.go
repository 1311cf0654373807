package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lecture-pipeline/internal/lecture"
	"lecture-pipeline/internal/lecture/usecase"
	"lecture-pipeline/internal/model"
)

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	repo := newMockRepo()
	repo.tasks["task-1"] = model.Task{ID: "task-1", LectureID: "lec-1", Title: "Essay"}
	uc := usecase.New(&mockLogger{}, repo, nil, nil, nil, nil, nil)

	completed := true
	got, err := uc.UpdateTask(ctx, lecture.UpdateTaskInput{TaskID: "task-1", Completed: &completed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Completed {
		t.Error("task not marked completed")
	}

	if _, err := uc.UpdateTask(ctx, lecture.UpdateTaskInput{TaskID: "nope"}); !errors.Is(err, lecture.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestScheduleTask(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("stores the opaque event id", func(t *testing.T) {
		repo := newMockRepo()
		repo.tasks["task-1"] = model.Task{ID: "task-1", Title: "Essay", DueDate: &due}
		sched := &mockScheduler{eventID: "evt_8f2k"}
		uc := usecase.New(&mockLogger{}, repo, nil, nil, nil, nil, sched)

		got, err := uc.ScheduleTask(ctx, "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CalendarEventID == nil || *got.CalendarEventID != "evt_8f2k" {
			t.Errorf("CalendarEventID = %v, want evt_8f2k", got.CalendarEventID)
		}
		if sched.gotTask == nil || sched.gotTask.Title != "Essay" {
			t.Errorf("scheduler received %+v", sched.gotTask)
		}
	})

	t.Run("no due date", func(t *testing.T) {
		repo := newMockRepo()
		repo.tasks["task-1"] = model.Task{ID: "task-1", Title: "Essay"}
		uc := usecase.New(&mockLogger{}, repo, nil, nil, nil, nil, &mockScheduler{})

		if _, err := uc.ScheduleTask(ctx, "task-1"); !errors.Is(err, lecture.ErrNotSchedulable) {
			t.Errorf("expected ErrNotSchedulable, got %v", err)
		}
	})

	t.Run("calendar failure", func(t *testing.T) {
		repo := newMockRepo()
		repo.tasks["task-1"] = model.Task{ID: "task-1", DueDate: &due}
		sched := &mockScheduler{err: errors.New("calendar 503")}
		uc := usecase.New(&mockLogger{}, repo, nil, nil, nil, nil, sched)

		if _, err := uc.ScheduleTask(ctx, "task-1"); !errors.Is(err, lecture.ErrProvider) {
			t.Errorf("expected ErrProvider, got %v", err)
		}
		if repo.tasks["task-1"].CalendarEventID != nil {
			t.Error("event id stored despite failure")
		}
	})

	t.Run("no calendar configured", func(t *testing.T) {
		repo := newMockRepo()
		repo.tasks["task-1"] = model.Task{ID: "task-1", DueDate: &due}
		uc := usecase.New(&mockLogger{}, repo, nil, nil, nil, nil, nil)

		if _, err := uc.ScheduleTask(ctx, "task-1"); !errors.Is(err, lecture.ErrConfiguration) {
			t.Errorf("expected ErrConfiguration, got %v", err)
		}
	})
}
