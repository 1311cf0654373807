package http

import (
	"errors"

	"lecture-pipeline/internal/lecture"
	pkgErrors "lecture-pipeline/pkg/errors"
)

var (
	errMissingID   = pkgErrors.NewHTTPError(400, "id is required")
	errNoAudio     = pkgErrors.NewHTTPError(400, "audio_url or audio_content is required")
	errMissingMime = pkgErrors.NewHTTPError(400, "audio_mime is required with audio_content")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, lecture.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "lecture not found")
	case errors.Is(err, lecture.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, lecture.ErrAudioNotFound):
		return pkgErrors.NewHTTPError(404, "audio source could not be resolved")
	case errors.Is(err, lecture.ErrEmptyTranscript):
		return pkgErrors.NewHTTPError(412, "lecture has no transcript")
	case errors.Is(err, lecture.ErrNotSchedulable):
		return pkgErrors.NewHTTPError(412, "task has no due date")
	case errors.Is(err, lecture.ErrInvalidState):
		return pkgErrors.NewHTTPError(409, "lecture is not in a state that allows this transition")
	case errors.Is(err, lecture.ErrVersionConflict):
		return pkgErrors.NewHTTPError(409, "lecture was modified concurrently, retry")
	case errors.Is(err, lecture.ErrProvider):
		return pkgErrors.NewHTTPError(502, "upstream provider request failed")
	case errors.Is(err, lecture.ErrConfiguration):
		return pkgErrors.NewHTTPError(500, "required provider is not configured")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
