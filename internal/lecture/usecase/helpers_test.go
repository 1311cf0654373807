package usecase_test

import (
	"context"
	"time"

	"lecture-pipeline/internal/extractor"
	"lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/llmprovider"
	"lecture-pipeline/pkg/transcribe"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory Repository.
type mockRepo struct {
	lectures map[string]model.Lecture
	tasks    map[string]model.Task

	lectureUpdates []repository.UpdateLectureOptions
	taskInserts    [][]repository.CreateTaskOptions
	listCalls      int

	versionConflict bool
}

func newMockRepo(lectures ...model.Lecture) *mockRepo {
	r := &mockRepo{
		lectures: make(map[string]model.Lecture),
		tasks:    make(map[string]model.Task),
	}
	for _, l := range lectures {
		r.lectures[l.ID] = l
	}
	return r
}

func (m *mockRepo) CreateLecture(ctx context.Context, opt repository.CreateLectureOptions) (model.Lecture, error) {
	lec := model.Lecture{
		ID:               opt.ID,
		CourseID:         opt.CourseID,
		Title:            opt.Title,
		AudioURL:         opt.AudioURL,
		AudioContent:     opt.AudioContent,
		AudioMime:        opt.AudioMime,
		AudioKey:         opt.AudioKey,
		ProcessingStatus: model.ProcessingStatusPending,
		Status:           model.LectureStatusDraft,
		Version:          1,
	}
	m.lectures[lec.ID] = lec
	return lec, nil
}

func (m *mockRepo) GetOneLecture(ctx context.Context, opt repository.GetOneLectureOptions) (model.Lecture, error) {
	if opt.ID != "" {
		return m.lectures[opt.ID], nil
	}
	if opt.AudioKey != "" {
		for _, l := range m.lectures {
			if l.AudioKey == opt.AudioKey {
				return l, nil
			}
		}
	}
	return model.Lecture{}, nil
}

func (m *mockRepo) ListLectures(ctx context.Context, opt repository.ListLecturesOptions) ([]model.Lecture, error) {
	m.listCalls++
	var out []model.Lecture
	for _, l := range m.lectures {
		if opt.CourseID != "" && l.CourseID != opt.CourseID {
			continue
		}
		if opt.HasInlineAudio && !l.HasInlineAudio() {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *mockRepo) UpdateLecture(ctx context.Context, opt repository.UpdateLectureOptions) (model.Lecture, error) {
	if m.versionConflict {
		return model.Lecture{}, repository.ErrVersionMismatch
	}
	m.lectureUpdates = append(m.lectureUpdates, opt)
	lec := m.lectures[opt.ID]
	lec.ProcessingStatus = opt.ProcessingStatus
	lec.Transcript = opt.Transcript
	lec.Summary = opt.Summary
	lec.Version++
	m.lectures[opt.ID] = lec
	return lec, nil
}

func (m *mockRepo) UpdateLectureAudio(ctx context.Context, opt repository.UpdateLectureAudioOptions) (model.Lecture, error) {
	lec := m.lectures[opt.ID]
	lec.AudioURL = opt.AudioURL
	lec.AudioContent = opt.AudioContent
	lec.AudioMime = opt.AudioMime
	lec.AudioKey = opt.AudioKey
	m.lectures[opt.ID] = lec
	return lec, nil
}

func (m *mockRepo) CreateTasks(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	m.taskInserts = append(m.taskInserts, opts)
	var out []model.Task
	for _, o := range opts {
		task := model.Task{
			ID:          o.ID,
			LectureID:   o.LectureID,
			CourseID:    o.CourseID,
			Type:        o.Type,
			Title:       o.Title,
			Description: o.Description,
			DueDate:     o.DueDate,
			Priority:    o.Priority,
		}
		m.tasks[task.ID] = task
		out = append(out, task)
	}
	return out, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	return m.tasks[opt.ID], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if opt.LectureID != "" && t.LectureID != opt.LectureID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	task := m.tasks[opt.ID]
	if opt.Completed != nil {
		task.Completed = *opt.Completed
	}
	if opt.CalendarEventID != nil {
		task.CalendarEventID = opt.CalendarEventID
	}
	m.tasks[opt.ID] = task
	return task, nil
}

type mockTranscriber struct {
	text string
	err  error

	gotInput *transcribe.Input
}

func (m *mockTranscriber) Transcribe(ctx context.Context, input transcribe.Input) (string, error) {
	in := input
	m.gotInput = &in
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

type mockStrategy struct {
	drafts []extractor.TaskDraft
	err    error
	called bool
}

func (m *mockStrategy) Extract(ctx context.Context, transcript string, now time.Time) ([]extractor.TaskDraft, error) {
	m.called = true
	if m.err != nil {
		return nil, m.err
	}
	return m.drafts, nil
}

type mockProvider struct {
	text string
	err  error
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock", ModelName: "mock-1"}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-1" }

type mockScheduler struct {
	eventID string
	err     error

	gotTask *model.Task
}

func (m *mockScheduler) ScheduleTask(ctx context.Context, task model.Task) (string, error) {
	t := task
	m.gotTask = &t
	if m.err != nil {
		return "", m.err
	}
	return m.eventID, nil
}

func strPtr(s string) *string { return &s }
