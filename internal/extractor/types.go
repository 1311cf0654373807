package extractor

import (
	"time"

	"lecture-pipeline/internal/model"
)

// TaskDraft is one extraction candidate prior to persistence as a Task row.
type TaskDraft struct {
	Title       string
	Description string
	Type        model.TaskType
	Priority    model.TaskPriority
	DueDate     *time.Time
}
