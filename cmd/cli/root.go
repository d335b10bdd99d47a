package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"slices"

	"github.com/limaJavier/coursescheduler/internal/config"
	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/pkg/coursedb"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "coursescheduler",
	Short:        "Builds every conflict-free timetable of a set of courses",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json); defaults to a config file next to the executable, if any")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	configPath := cfgPath
	if configPath == "" {
		configPath = executableConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Looks for config.yaml, config.yml or config.json in the executable's directory
func executableConfigPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execPath = path.Dir(execPath)

	files, err := os.ReadDir(execPath)
	if err != nil {
		return ""
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	for _, candidate := range []string{"config.yaml", "config.yml", "config.json"} {
		if slices.Contains(fileNames, candidate) {
			return path.Join(execPath, candidate)
		}
	}
	return ""
}

func newLogger(cfg *config.Config, component string) logger.Logger {
	return logger.NewZerologLogger(component, cfg.Logging.Level)
}

func loadDatabase(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (model.Database, error) {
	source, err := coursedb.NewSource(cfg, log)
	if err != nil {
		return nil, err
	}
	database, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load course database: %w", err)
	}
	return database, nil
}
