package http

import (
	"github.com/gin-gonic/gin"

	"lecture-pipeline/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	lectures := rg.Group("/lectures", mw.RateLimit())
	{
		lectures.POST("", h.Create)
		lectures.GET("", h.List)
		lectures.GET("/:id", h.Detail)
		lectures.PUT("/:id/audio", h.AttachAudio)
		lectures.POST("/:id/transcribe", h.Transcribe)
		lectures.POST("/:id/summarize", h.Summarize)
		lectures.POST("/:id/tasks/extract", h.ExtractTasks)
		lectures.GET("/:id/tasks", h.ListTasks)
	}

	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.POST("/:id/schedule", h.ScheduleTask)
	}
}
