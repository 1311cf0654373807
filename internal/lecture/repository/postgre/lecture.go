package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/internal/model"
)

const lectureColumns = `id, course_id, title, audio_url, audio_content, audio_mime, audio_key,
		transcript, summary, processing_status, status, version, created_at, updated_at`

// CreateLecture inserts a new Lecture row and returns the created entity.
// Audio fields are written in the same insert so a lecture created with
// inline content never exists without its virtual identifier.
func (r *implRepository) CreateLecture(ctx context.Context, opt repo.CreateLectureOptions) (model.Lecture, error) {
	query := fmt.Sprintf(`
		INSERT INTO lectures (id, course_id, title, audio_url, audio_content, audio_mime, audio_key,
			processing_status, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', 'draft', 1, NOW(), NOW())
		RETURNING %s`, lectureColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.CourseID, opt.Title,
		opt.AudioURL, opt.AudioContent, nullable(opt.AudioMime), nullable(opt.AudioKey),
	)
	lec, err := scanLecture(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLecture"), err)
		return model.Lecture{}, repo.ErrFailedToInsert
	}
	return lec, nil
}

// GetOneLecture retrieves a single Lecture by the provided filters (AND condition).
// Returns zero-value Lecture (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneLecture(ctx context.Context, opt repo.GetOneLectureOptions) (model.Lecture, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM lectures WHERE %s LIMIT 1", lectureColumns, mods)

	lec, err := scanLecture(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Lecture{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneLecture"), err)
		return model.Lecture{}, repo.ErrFailedToGet
	}
	return lec, nil
}

// ListLectures returns lectures matching the filters, newest first.
func (r *implRepository) ListLectures(ctx context.Context, opt repo.ListLecturesOptions) ([]model.Lecture, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM lectures %s", lectureColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLectures"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var lectures []model.Lecture
	for rows.Next() {
		lec, err := scanLecture(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLectures"), err)
			return nil, repo.ErrFailedToList
		}
		lectures = append(lectures, lec)
	}
	return lectures, rows.Err()
}

// UpdateLecture writes processing status, transcript and summary under an
// optimistic version check. When the stored version has moved on (a
// concurrent transition won), no row matches and ErrVersionMismatch is
// returned so the caller can re-read and decide.
func (r *implRepository) UpdateLecture(ctx context.Context, opt repo.UpdateLectureOptions) (model.Lecture, error) {
	query := fmt.Sprintf(`
		UPDATE lectures
		SET processing_status = $1, transcript = $2, summary = $3,
			version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
		RETURNING %s`, lectureColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.ProcessingStatus, opt.Transcript, opt.Summary, opt.ID, opt.Version,
	)
	lec, err := scanLecture(row)
	if err == sql.ErrNoRows {
		return model.Lecture{}, repo.ErrVersionMismatch
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLecture"), err)
		return model.Lecture{}, repo.ErrFailedToUpdate
	}
	return lec, nil
}

// UpdateLectureAudio attaches or replaces a lecture's audio fields.
func (r *implRepository) UpdateLectureAudio(ctx context.Context, opt repo.UpdateLectureAudioOptions) (model.Lecture, error) {
	query := fmt.Sprintf(`
		UPDATE lectures
		SET audio_url = $1, audio_content = $2, audio_mime = $3, audio_key = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING %s`, lectureColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.AudioURL, opt.AudioContent, nullable(opt.AudioMime), nullable(opt.AudioKey), opt.ID,
	)
	lec, err := scanLecture(row)
	if err == sql.ErrNoRows {
		return model.Lecture{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLectureAudio"), err)
		return model.Lecture{}, repo.ErrFailedToUpdate
	}
	return lec, nil
}
