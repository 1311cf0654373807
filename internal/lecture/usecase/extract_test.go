package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lecture-pipeline/internal/extractor"
	"lecture-pipeline/internal/lecture"
	"lecture-pipeline/internal/lecture/usecase"
	"lecture-pipeline/internal/model"
)

func TestExtractTasks(t *testing.T) {
	ctx := context.Background()

	aiDrafts := []extractor.TaskDraft{
		{Title: "Essay on paging", Type: model.TaskTypeAssignment, Priority: model.TaskPriorityHigh},
		{Title: "Read chapter 4", Type: model.TaskTypeReading, Priority: model.TaskPriorityMedium},
	}
	ruleDrafts := []extractor.TaskDraft{
		{Title: "Quiz on Friday", Type: model.TaskTypeQuiz, Priority: model.TaskPriorityMedium},
	}

	t.Run("ai strategy persists drafts", func(t *testing.T) {
		repo := newMockRepo(transcribedLecture("lec-1"))
		ai := &mockStrategy{drafts: aiDrafts}
		uc := usecase.New(&mockLogger{}, repo, nil, nil, ai, &mockStrategy{}, nil)

		tasks, err := uc.ExtractTasks(ctx, lecture.ExtractTasksInput{LectureID: "lec-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("got %d tasks, want 2", len(tasks))
		}
		for _, task := range tasks {
			if task.ID == "" || task.LectureID != "lec-1" || task.CourseID != "course-1" {
				t.Errorf("task not linked to lecture: %+v", task)
			}
		}
		if len(repo.taskInserts) != 1 {
			t.Errorf("expected a single bulk insert, got %d", len(repo.taskInserts))
		}
	})

	t.Run("malformed ai reply falls back when opted in", func(t *testing.T) {
		repo := newMockRepo(transcribedLecture("lec-1"))
		ai := &mockStrategy{err: fmt.Errorf("%w: junk", extractor.ErrMalformedReply)}
		rules := &mockStrategy{drafts: ruleDrafts}
		uc := usecase.New(&mockLogger{}, repo, nil, nil, ai, rules, nil)

		tasks, err := uc.ExtractTasks(ctx, lecture.ExtractTasksInput{LectureID: "lec-1", UseFallback: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rules.called {
			t.Error("rule-based strategy was not invoked")
		}
		if len(tasks) != 1 || tasks[0].Title != "Quiz on Friday" {
			t.Errorf("tasks = %+v, want the rule-based draft", tasks)
		}
	})

	t.Run("malformed ai reply propagates without opt-in", func(t *testing.T) {
		repo := newMockRepo(transcribedLecture("lec-1"))
		ai := &mockStrategy{err: fmt.Errorf("%w: junk", extractor.ErrMalformedReply)}
		rules := &mockStrategy{drafts: ruleDrafts}
		uc := usecase.New(&mockLogger{}, repo, nil, nil, ai, rules, nil)

		_, err := uc.ExtractTasks(ctx, lecture.ExtractTasksInput{LectureID: "lec-1"})
		if !errors.Is(err, lecture.ErrProvider) {
			t.Fatalf("expected ErrProvider, got %v", err)
		}
		if rules.called {
			t.Error("rule-based strategy invoked without opt-in")
		}
		if len(repo.taskInserts) != 0 {
			t.Error("tasks persisted despite extraction failure")
		}
	})

	t.Run("no ai strategy uses rules directly", func(t *testing.T) {
		repo := newMockRepo(transcribedLecture("lec-1"))
		rules := &mockStrategy{drafts: ruleDrafts}
		uc := usecase.New(&mockLogger{}, repo, nil, nil, nil, rules, nil)

		tasks, err := uc.ExtractTasks(ctx, lecture.ExtractTasksInput{LectureID: "lec-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 {
			t.Errorf("got %d tasks, want 1", len(tasks))
		}
	})

	t.Run("empty transcript", func(t *testing.T) {
		repo := newMockRepo(pendingLecture("lec-1"))
		uc := usecase.New(&mockLogger{}, repo, nil, nil, &mockStrategy{}, &mockStrategy{}, nil)

		_, err := uc.ExtractTasks(ctx, lecture.ExtractTasksInput{LectureID: "lec-1"})
		if !errors.Is(err, lecture.ErrEmptyTranscript) {
			t.Fatalf("expected ErrEmptyTranscript, got %v", err)
		}
	})

	t.Run("no drafts means no insert", func(t *testing.T) {
		repo := newMockRepo(transcribedLecture("lec-1"))
		uc := usecase.New(&mockLogger{}, repo, nil, nil, &mockStrategy{}, nil, nil)

		tasks, err := uc.ExtractTasks(ctx, lecture.ExtractTasksInput{LectureID: "lec-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("got %d tasks, want 0", len(tasks))
		}
		if len(repo.taskInserts) != 0 {
			t.Error("bulk insert issued for zero drafts")
		}
	})
}
