package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lecture-pipeline/internal/extractor"
	"lecture-pipeline/internal/lecture"
	"lecture-pipeline/pkg/llmprovider"
	"lecture-pipeline/pkg/log"
	"lecture-pipeline/pkg/transcribe"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB

	// Lecture domain collaborators. Optional ones may be nil; the use
	// case reports a configuration error when an operation needs them.
	transcriber  transcribe.Transcriber
	summarizers  map[lecture.SummaryEngine]llmprovider.Provider
	aiStrategy   extractor.Strategy
	ruleStrategy extractor.Strategy
	scheduler    lecture.Scheduler

	rateLimitRPS   float64
	rateLimitBurst int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB

	Transcriber  transcribe.Transcriber
	Summarizers  map[lecture.SummaryEngine]llmprovider.Provider
	AIStrategy   extractor.Strategy
	RuleStrategy extractor.Strategy
	Scheduler    lecture.Scheduler

	RateLimitRPS   float64
	RateLimitBurst int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		transcriber:    cfg.Transcriber,
		summarizers:    cfg.Summarizers,
		aiStrategy:     cfg.AIStrategy,
		ruleStrategy:   cfg.RuleStrategy,
		scheduler:      cfg.Scheduler,
		rateLimitRPS:   cfg.RateLimitRPS,
		rateLimitBurst: cfg.RateLimitBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}

// Run maps all handlers and serves until the context is cancelled, then
// shuts down with a grace period.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
