package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	repo "lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/internal/model"
)

const taskColumns = `id, lecture_id, course_id, type, title, description,
		due_date, priority, completed, calendar_event_id, created_at, updated_at`

// CreateTasks inserts all tasks in a single statement so one extraction run
// is persisted atomically.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	var (
		values []string
		args   []any
	)
	for i, opt := range opts {
		base := i * 8
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, false, NOW(), NOW())",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		args = append(args,
			opt.ID, opt.LectureID, opt.CourseID,
			opt.Type, opt.Title, opt.Description,
			opt.DueDate, opt.Priority,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO tasks (id, lecture_id, course_id, type, title, description,
			due_date, priority, completed, created_at, updated_at)
		VALUES %s
		RETURNING %s`, strings.Join(values, ", "), taskColumns)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CreateTasks"), err)
			return nil, repo.ErrFailedToInsert
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// GetOneTask retrieves a single Task. Returns zero-value Task (ID == "")
// when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1 LIMIT 1", taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns tasks matching the filters, oldest first so extraction
// order is preserved.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.LectureID != "" {
		conditions = append(conditions, fmt.Sprintf("lecture_id = $%d", idx))
		args = append(args, opt.LectureID)
		idx++
	}
	if opt.CourseID != "" {
		conditions = append(conditions, fmt.Sprintf("course_id = $%d", idx))
		args = append(args, opt.CourseID)
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY created_at ASC", taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// UpdateTask applies a partial update; nil fields are left unchanged.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET completed = COALESCE($1, completed),
			calendar_event_id = COALESCE($2, calendar_event_id),
			updated_at = NOW()
		WHERE id = $3
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.Completed, opt.CalendarEventID, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}
