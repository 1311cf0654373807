package usecase

import (
	"context"
	"errors"
	"fmt"

	"lecture-pipeline/internal/lecture"
	repo "lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/transcribe"
)

// Transcribe runs the transcription transition. A non-empty manual
// transcript bypasses audio resolution and the adapter entirely. Only the
// final state is persisted: transcribed with the transcript on success,
// failed when the adapter errors. Precondition and configuration failures
// leave the stored record untouched.
func (uc *implUseCase) Transcribe(ctx context.Context, input lecture.TranscribeInput) (model.Lecture, error) {
	lec, err := uc.GetLecture(ctx, input.LectureID)
	if err != nil {
		return model.Lecture{}, err
	}

	started, err := lecture.StartTranscription(lec)
	if err != nil {
		return model.Lecture{}, err
	}

	transcript := input.ManualTranscript
	if transcript == "" {
		audio, err := uc.resolveAudioInput(ctx, lec)
		if err != nil {
			return model.Lecture{}, err
		}
		if uc.transcriber == nil {
			return model.Lecture{}, fmt.Errorf("%w: transcriber", lecture.ErrConfiguration)
		}

		transcript, err = uc.transcriber.Transcribe(ctx, audio)
		if err != nil {
			if errors.Is(err, transcribe.ErrMissingAPIKey) {
				return model.Lecture{}, fmt.Errorf("%w: %v", lecture.ErrConfiguration, err)
			}
			uc.l.Errorf(ctx, "uc.Transcribe Transcribe: %v", err)
			if _, perr := uc.persistTransition(ctx, lecture.MarkFailed(started), lec.Version); perr != nil {
				return model.Lecture{}, perr
			}
			return model.Lecture{}, fmt.Errorf("%w: %v", lecture.ErrProvider, err)
		}
	}

	done, err := lecture.FinishTranscription(started, transcript)
	if err != nil {
		// Adapter produced no text. Recorded as a failure so the
		// lecture can be retried.
		if _, perr := uc.persistTransition(ctx, lecture.MarkFailed(started), lec.Version); perr != nil {
			return model.Lecture{}, perr
		}
		return model.Lecture{}, err
	}

	return uc.persistTransition(ctx, done, lec.Version)
}

// persistTransition writes the outcome of a processing transition under the
// optimistic version check. A mismatch means another transition won the
// race; the caller gets ErrVersionConflict and must re-read.
func (uc *implUseCase) persistTransition(ctx context.Context, lec model.Lecture, version int) (model.Lecture, error) {
	updated, err := uc.repo.UpdateLecture(ctx, repo.UpdateLectureOptions{
		ID:               lec.ID,
		Version:          version,
		ProcessingStatus: lec.ProcessingStatus,
		Transcript:       lec.Transcript,
		Summary:          lec.Summary,
	})
	if errors.Is(err, repo.ErrVersionMismatch) {
		return model.Lecture{}, lecture.ErrVersionConflict
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.persistTransition UpdateLecture: %v", err)
		return model.Lecture{}, err
	}
	return updated, nil
}
