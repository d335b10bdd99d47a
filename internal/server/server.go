package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Planner is the part of the planner the HTTP layer needs.
type Planner interface {
	Schedules(ctx context.Context, courseNames []string) ([]model.Schedule, error)
	Plan(ctx context.Context, courseNames []string) ([][]model.ScheduleEntry, error)
	Database() model.Database
	Strategy() string
}

type Options struct {
	Address string
	// Gatherer backs GET /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

type Server struct {
	engine  *gin.Engine
	address string
	log     logger.Logger
}

func New(planner Planner, log logger.Logger, options Options) *Server {
	if log == nil {
		log = logger.NopLogger{}
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(Logger(log))

	handlers := newHandlers(planner, log)
	engine.GET("/healthz", handlers.health)
	engine.GET("/schedules", handlers.schedules)
	engine.POST("/gateway", handlers.gateway)
	engine.GET("/activities", handlers.activities)
	if options.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(options.Gatherer, promhttp.HandlerOpts{})))
	}

	return &Server{engine: engine, address: options.Address, log: log}
}

func (server *Server) Handler() http.Handler {
	return server.engine
}

// Run serves until the context is cancelled, then shuts down gracefully
func (server *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              server.address,
		Handler:           server.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		server.log.Infof("listening on %v", server.address)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		server.log.Infof("server stopped")
		return nil
	}
}
