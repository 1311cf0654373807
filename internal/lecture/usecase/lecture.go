package usecase

import (
	"context"

	"github.com/google/uuid"

	"lecture-pipeline/internal/lecture"
	repo "lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/internal/model"
)

// CreateLecture stores a new lecture. When inline audio is supplied the
// virtual identifier and its pseudo-URL are written in the same insert, so
// there is no window where the content exists without its key.
func (uc *implUseCase) CreateLecture(ctx context.Context, input lecture.CreateLectureInput) (model.Lecture, error) {
	opt := repo.CreateLectureOptions{
		ID:       uuid.NewString(),
		CourseID: input.CourseID,
		Title:    input.Title,
	}

	if input.ExternalURL != "" {
		url := input.ExternalURL
		opt.AudioURL = &url
	}
	if len(input.AudioContent) > 0 {
		opt.AudioContent = input.AudioContent
		opt.AudioMime = input.AudioMime
		opt.AudioKey = buildAudioKey(input.Title)
		if opt.AudioURL == nil {
			pseudo := audioScheme + opt.AudioKey
			opt.AudioURL = &pseudo
		}
	}

	lec, err := uc.repo.CreateLecture(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateLecture CreateLecture: %v", err)
		return model.Lecture{}, err
	}
	if lec.AudioKey != "" {
		uc.audioKeys.Add(lec.AudioKey, lec.ID)
	}
	return lec, nil
}

// GetLecture fetches one lecture by ID.
func (uc *implUseCase) GetLecture(ctx context.Context, id string) (model.Lecture, error) {
	lec, err := uc.repo.GetOneLecture(ctx, repo.GetOneLectureOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetLecture GetOneLecture: %v", err)
		return model.Lecture{}, err
	}
	if lec.ID == "" {
		return model.Lecture{}, lecture.ErrNotFound
	}
	return lec, nil
}

// ListLectures returns lectures, optionally scoped to a course.
func (uc *implUseCase) ListLectures(ctx context.Context, input lecture.ListLecturesInput) ([]model.Lecture, error) {
	lectures, err := uc.repo.ListLectures(ctx, repo.ListLecturesOptions{CourseID: input.CourseID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLectures ListLectures: %v", err)
		return nil, err
	}
	return lectures, nil
}

// AttachAudio attaches or replaces a lecture's audio after creation. Kept
// for callers that create the record first and upload content later.
func (uc *implUseCase) AttachAudio(ctx context.Context, input lecture.AttachAudioInput) (model.Lecture, error) {
	lec, err := uc.GetLecture(ctx, input.LectureID)
	if err != nil {
		return model.Lecture{}, err
	}

	opt := repo.UpdateLectureAudioOptions{ID: lec.ID}
	if input.ExternalURL != "" {
		url := input.ExternalURL
		opt.AudioURL = &url
	}
	if len(input.AudioContent) > 0 {
		opt.AudioContent = input.AudioContent
		opt.AudioMime = input.AudioMime
		opt.AudioKey = buildAudioKey(lec.Title)
		if opt.AudioURL == nil {
			pseudo := audioScheme + opt.AudioKey
			opt.AudioURL = &pseudo
		}
	}

	updated, err := uc.repo.UpdateLectureAudio(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AttachAudio UpdateLectureAudio: %v", err)
		return model.Lecture{}, err
	}
	if updated.AudioKey != "" {
		uc.audioKeys.Add(updated.AudioKey, updated.ID)
	}
	return updated, nil
}
