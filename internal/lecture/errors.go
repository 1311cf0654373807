package lecture

import "errors"

var (
	ErrNotFound        = errors.New("lecture not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrAudioNotFound   = errors.New("audio source not found")
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrInvalidState    = errors.New("invalid processing state for requested transition")
	ErrVersionConflict = errors.New("lecture was modified concurrently")
	ErrNotSchedulable  = errors.New("task has no due date to schedule")
	ErrProvider        = errors.New("external provider request failed")
	ErrConfiguration   = errors.New("required collaborator is not configured")
)
