package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/limaJavier/coursescheduler/internal/metrics"
	"github.com/limaJavier/coursescheduler/internal/planner"
	"github.com/limaJavier/coursescheduler/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve schedule requests over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg, "server")

	database, err := loadDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NopRecorder{}
	options := server.Options{Address: cfg.Server.Address}
	if cfg.Server.MetricsEnabled {
		prom, err := metrics.NewPromRecorder()
		if err != nil {
			return err
		}
		recorder = prom
		options.Gatherer = prometheus.DefaultGatherer
	}

	plan, err := planner.New(database, cfg.Scheduler.Strategy, log, recorder)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	return server.New(plan, log, options).Run(ctx)
}
