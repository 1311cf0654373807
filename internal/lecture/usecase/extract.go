package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lecture-pipeline/internal/extractor"
	"lecture-pipeline/internal/lecture"
	repo "lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/internal/model"
)

// ExtractTasks runs task extraction over the lecture transcript and
// persists the drafts in one insert. The AI strategy is preferred when
// configured; UseFallback opts in to recovering from a malformed AI reply
// with the deterministic rule-based strategy.
func (uc *implUseCase) ExtractTasks(ctx context.Context, input lecture.ExtractTasksInput) ([]model.Task, error) {
	lec, err := uc.GetLecture(ctx, input.LectureID)
	if err != nil {
		return nil, err
	}
	if !lec.HasTranscript() {
		return nil, lecture.ErrEmptyTranscript
	}

	drafts, err := uc.runExtraction(ctx, *lec.Transcript, input.UseFallback)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return []model.Task{}, nil
	}

	opts := make([]repo.CreateTaskOptions, 0, len(drafts))
	for _, d := range drafts {
		opts = append(opts, repo.CreateTaskOptions{
			ID:          uuid.NewString(),
			LectureID:   lec.ID,
			CourseID:    lec.CourseID,
			Type:        d.Type,
			Title:       d.Title,
			Description: d.Description,
			DueDate:     d.DueDate,
			Priority:    d.Priority,
		})
	}

	tasks, err := uc.repo.CreateTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExtractTasks CreateTasks: %v", err)
		return nil, err
	}
	uc.l.Infof(ctx, "uc.ExtractTasks: lecture %s yielded %d tasks", lec.ID, len(tasks))
	return tasks, nil
}

func (uc *implUseCase) runExtraction(ctx context.Context, transcript string, useFallback bool) ([]extractor.TaskDraft, error) {
	if uc.aiStrategy == nil {
		if uc.ruleStrategy == nil {
			return nil, fmt.Errorf("%w: no extraction strategy", lecture.ErrConfiguration)
		}
		return uc.ruleStrategy.Extract(ctx, transcript, time.Now())
	}

	drafts, err := uc.aiStrategy.Extract(ctx, transcript, time.Now())
	if err == nil {
		return drafts, nil
	}
	if useFallback && errors.Is(err, extractor.ErrMalformedReply) && uc.ruleStrategy != nil {
		uc.l.Warnf(ctx, "uc.runExtraction: AI reply unusable, falling back to rules: %v", err)
		return uc.ruleStrategy.Extract(ctx, transcript, time.Now())
	}
	return nil, fmt.Errorf("%w: %v", lecture.ErrProvider, err)
}
