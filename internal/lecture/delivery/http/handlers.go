package http

import (
	"github.com/gin-gonic/gin"

	"lecture-pipeline/pkg/response"
)

// Create godoc
// @Summary     Create a new lecture
// @Description Creates a lecture record. Audio may be supplied as an external URL or inline base64 content, or attached later.
// @Tags        Lectures
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Lecture data"
// @Success     200 {object} lectureResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lectures [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	lec, err := h.uc.CreateLecture(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateLecture: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLectureResp(lec))
}

// List godoc
// @Summary     List lectures
// @Description Returns lectures, optionally filtered by course, newest first.
// @Tags        Lectures
// @Produce     json
// @Param       course_id query string false "Filter by course"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lectures [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	lectures, err := h.uc.ListLectures(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLectures: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLectureListResp(lectures))
}

// Detail godoc
// @Summary     Get lecture detail
// @Description Returns a single lecture with its transcript and summary when present.
// @Tags        Lectures
// @Produce     json
// @Param       id path string true "Lecture ID"
// @Success     200 {object} lectureResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lectures/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	lec, err := h.uc.GetLecture(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetLecture: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLectureResp(lec))
}

// AttachAudio godoc
// @Summary     Attach audio to a lecture
// @Description Attaches or replaces a lecture's audio after creation.
// @Tags        Lectures
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Lecture ID"
// @Param       body body attachAudioReq true "Audio reference or content"
// @Success     200 {object} lectureResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lectures/{id}/audio [PUT]
func (h *handler) AttachAudio(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAttachAudioReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	lec, err := h.uc.AttachAudio(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AttachAudio: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLectureResp(lec))
}

// Transcribe godoc
// @Summary     Transcribe a lecture
// @Description Resolves the lecture's audio and runs speech-to-text. A transcript in the body bypasses the adapter.
// @Tags        Processing
// @Accept      json
// @Produce     json
// @Param       id   path string        true  "Lecture ID"
// @Param       body body transcribeReq false "Optional manual transcript"
// @Success     200 {object} lectureResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - invalid state or concurrent update"
// @Failure     502 {object} response.Resp "Bad Gateway - transcription provider failed"
// @Router      /api/v1/lectures/{id}/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscribeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	lec, err := h.uc.Transcribe(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLectureResp(lec))
}

// Summarize godoc
// @Summary     Summarize a lecture
// @Description Generates a summary from the stored transcript with the selected engine.
// @Tags        Processing
// @Accept      json
// @Produce     json
// @Param       id   path string       true  "Lecture ID"
// @Param       body body summarizeReq false "Engine selection (primary/secondary)"
// @Success     200 {object} lectureResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     412 {object} response.Resp "Precondition Failed - no transcript"
// @Failure     502 {object} response.Resp "Bad Gateway - summarization provider failed"
// @Router      /api/v1/lectures/{id}/summarize [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummarizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	lec, err := h.uc.Summarize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLectureResp(lec))
}

// ExtractTasks godoc
// @Summary     Extract tasks from a lecture
// @Description Runs task extraction over the transcript and persists the results.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string     true  "Lecture ID"
// @Param       body body extractReq false "Extraction options"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     412 {object} response.Resp "Precondition Failed - no transcript"
// @Failure     502 {object} response.Resp "Bad Gateway - extraction provider failed"
// @Router      /api/v1/lectures/{id}/tasks/extract [POST]
func (h *handler) ExtractTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.ExtractTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskListResp(tasks))
}

// ListTasks godoc
// @Summary     List a lecture's tasks
// @Description Returns tasks extracted from one lecture, in extraction order.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Lecture ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lectures/{id}/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskListResp(tasks))
}

// UpdateTask godoc
// @Summary     Update a task
// @Description Partial task update; currently the completion flag.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body updateTaskReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.UpdateTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(task))
}

// ScheduleTask godoc
// @Summary     Schedule a task on the calendar
// @Description Creates an all-day calendar event on the task's due date and stores the event id.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     412 {object} response.Resp "Precondition Failed - no due date"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider failed"
// @Router      /api/v1/tasks/{id}/schedule [POST]
func (h *handler) ScheduleTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	task, err := h.uc.ScheduleTask(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(task))
}
