package http

import (
	"lecture-pipeline/internal/lecture"
	"lecture-pipeline/pkg/log"
)

type handler struct {
	l  log.Logger
	uc lecture.UseCase
}

// New creates a new HTTP handler for the lecture domain.
func New(l log.Logger, uc lecture.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
