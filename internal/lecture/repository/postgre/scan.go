package postgre

import (
	"database/sql"

	"lecture-pipeline/internal/model"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLecture(row rowScanner) (model.Lecture, error) {
	var (
		lec        model.Lecture
		audioURL   sql.NullString
		audioMime  sql.NullString
		audioKey   sql.NullString
		transcript sql.NullString
		summary    sql.NullString
	)
	err := row.Scan(
		&lec.ID, &lec.CourseID, &lec.Title,
		&audioURL, &lec.AudioContent, &audioMime, &audioKey,
		&transcript, &summary,
		&lec.ProcessingStatus, &lec.Status, &lec.Version,
		&lec.CreatedAt, &lec.UpdatedAt,
	)
	if err != nil {
		return model.Lecture{}, err
	}
	if audioURL.Valid {
		lec.AudioURL = &audioURL.String
	}
	lec.AudioMime = audioMime.String
	lec.AudioKey = audioKey.String
	if transcript.Valid {
		lec.Transcript = &transcript.String
	}
	if summary.Valid {
		lec.Summary = &summary.String
	}
	return lec, nil
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task    model.Task
		dueDate sql.NullTime
		eventID sql.NullString
	)
	err := row.Scan(
		&task.ID, &task.LectureID, &task.CourseID,
		&task.Type, &task.Title, &task.Description,
		&dueDate, &task.Priority, &task.Completed, &eventID,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	if dueDate.Valid {
		lecDue := dueDate.Time
		task.DueDate = &lecDue
	}
	if eventID.Valid {
		task.CalendarEventID = &eventID.String
	}
	return task, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
