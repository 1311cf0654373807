package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	lectureHTTP "lecture-pipeline/internal/lecture/delivery/http"
	lectureRepo "lecture-pipeline/internal/lecture/repository/postgre"
	lectureUC "lecture-pipeline/internal/lecture/usecase"
	"lecture-pipeline/internal/middleware"
)

// setupLectureDomain initializes the lecture domain and registers its routes.
func (srv *HTTPServer) setupLectureDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := lectureRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := lectureUC.New(
		srv.l,
		repo,
		srv.transcriber,
		srv.summarizers,
		srv.aiStrategy,
		srv.ruleStrategy,
		srv.scheduler,
	)

	// 3. HTTP Handler
	h := lectureHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/lectures and /api/v1/tasks
	lectureHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Lecture domain registered")
	return nil
}
