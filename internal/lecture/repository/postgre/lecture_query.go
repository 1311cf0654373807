package postgre

import (
	"fmt"
	"strings"

	repo "lecture-pipeline/internal/lecture/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneLecture.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneLectureOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.AudioKey != "" {
		conditions = append(conditions, fmt.Sprintf("audio_key = $%d", idx))
		args = append(args, opt.AudioKey)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListLectures.
func (r *implRepository) buildListQuery(opt repo.ListLecturesOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.CourseID != "" {
		conditions = append(conditions, fmt.Sprintf("course_id = $%d", idx))
		args = append(args, opt.CourseID)
		idx++
	}
	if opt.HasInlineAudio {
		conditions = append(conditions, "audio_content IS NOT NULL AND length(audio_content) > 0")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY created_at DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
