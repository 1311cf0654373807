package http

import (
	"time"

	"lecture-pipeline/internal/lecture"
	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	CourseID     string `json:"course_id"     binding:"required,min=1,max=255"`
	Title        string `json:"title"         binding:"required,min=1,max=500"`
	AudioURL     string `json:"audio_url"     binding:"omitempty,url"`
	AudioContent []byte `json:"audio_content" binding:"omitempty"`
	AudioMime    string `json:"audio_mime"    binding:"omitempty"`
}

func (r createReq) validate() error {
	if len(r.AudioContent) > 0 && r.AudioMime == "" {
		return errMissingMime
	}
	return nil
}

func (r createReq) toInput() lecture.CreateLectureInput {
	return lecture.CreateLectureInput{
		CourseID:     r.CourseID,
		Title:        r.Title,
		ExternalURL:  r.AudioURL,
		AudioContent: r.AudioContent,
		AudioMime:    r.AudioMime,
	}
}

// ---

type attachAudioReq struct {
	ID           string `json:"-"` // populated from URI param
	AudioURL     string `json:"audio_url"     binding:"omitempty,url"`
	AudioContent []byte `json:"audio_content" binding:"omitempty"`
	AudioMime    string `json:"audio_mime"    binding:"omitempty"`
}

func (r attachAudioReq) validate() error {
	if r.AudioURL == "" && len(r.AudioContent) == 0 {
		return errNoAudio
	}
	if len(r.AudioContent) > 0 && r.AudioMime == "" {
		return errMissingMime
	}
	return nil
}

func (r attachAudioReq) toInput() lecture.AttachAudioInput {
	return lecture.AttachAudioInput{
		LectureID:    r.ID,
		ExternalURL:  r.AudioURL,
		AudioContent: r.AudioContent,
		AudioMime:    r.AudioMime,
	}
}

// ---

type transcribeReq struct {
	ID         string `json:"-"`
	Transcript string `json:"transcript" binding:"omitempty"`
}

func (r transcribeReq) toInput() lecture.TranscribeInput {
	return lecture.TranscribeInput{
		LectureID:        r.ID,
		ManualTranscript: r.Transcript,
	}
}

// ---

type summarizeReq struct {
	ID     string `json:"-"`
	Engine string `json:"engine" binding:"omitempty,oneof=primary secondary"`
}

func (r summarizeReq) toInput() lecture.SummarizeInput {
	return lecture.SummarizeInput{
		LectureID: r.ID,
		Engine:    lecture.SummaryEngine(r.Engine),
	}
}

// ---

type extractReq struct {
	ID          string `json:"-"`
	UseFallback bool   `json:"use_fallback"`
}

func (r extractReq) toInput() lecture.ExtractTasksInput {
	return lecture.ExtractTasksInput{
		LectureID:   r.ID,
		UseFallback: r.UseFallback,
	}
}

// ---

type listReq struct {
	CourseID string `form:"course_id"`
}

func (r listReq) toInput() lecture.ListLecturesInput {
	return lecture.ListLecturesInput{CourseID: r.CourseID}
}

// ---

type updateTaskReq struct {
	ID        string `json:"-"`
	Completed *bool  `json:"completed"`
}

func (r updateTaskReq) toInput() lecture.UpdateTaskInput {
	return lecture.UpdateTaskInput{
		TaskID:    r.ID,
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

// lectureResp never echoes inline audio bytes back; has_audio signals their
// presence instead.
type lectureResp struct {
	ID               string    `json:"id"`
	CourseID         string    `json:"course_id"`
	Title            string    `json:"title"`
	AudioURL         *string   `json:"audio_url,omitempty"`
	HasAudio         bool      `json:"has_audio"`
	Transcript       *string   `json:"transcript,omitempty"`
	Summary          *string   `json:"summary,omitempty"`
	ProcessingStatus string    `json:"processing_status"`
	Status           string    `json:"status"`
	Version          int       `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (h *handler) newLectureResp(lec model.Lecture) lectureResp {
	return lectureResp{
		ID:               lec.ID,
		CourseID:         lec.CourseID,
		Title:            lec.Title,
		AudioURL:         lec.AudioURL,
		HasAudio:         lec.HasInlineAudio() || lec.AudioURL != nil,
		Transcript:       lec.Transcript,
		Summary:          lec.Summary,
		ProcessingStatus: string(lec.ProcessingStatus),
		Status:           string(lec.Status),
		Version:          lec.Version,
		CreatedAt:        lec.CreatedAt,
		UpdatedAt:        lec.UpdatedAt,
	}
}

type taskResp struct {
	ID              string         `json:"id"`
	LectureID       string         `json:"lecture_id"`
	CourseID        string         `json:"course_id"`
	Type            string         `json:"type"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	DueDate         *response.Date `json:"due_date,omitempty"`
	Priority        string         `json:"priority"`
	Completed       bool           `json:"completed"`
	CalendarEventID *string        `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (h *handler) newTaskResp(task model.Task) taskResp {
	resp := taskResp{
		ID:              task.ID,
		LectureID:       task.LectureID,
		CourseID:        task.CourseID,
		Type:            string(task.Type),
		Title:           task.Title,
		Description:     task.Description,
		Priority:        string(task.Priority),
		Completed:       task.Completed,
		CalendarEventID: task.CalendarEventID,
		CreatedAt:       task.CreatedAt,
	}
	if task.DueDate != nil {
		d := response.Date(*task.DueDate)
		resp.DueDate = &d
	}
	return resp
}

func (h *handler) newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, h.newTaskResp(task))
	}
	return out
}

func (h *handler) newLectureListResp(lectures []model.Lecture) []lectureResp {
	out := make([]lectureResp, 0, len(lectures))
	for _, lec := range lectures {
		out = append(out, h.newLectureResp(lec))
	}
	return out
}
