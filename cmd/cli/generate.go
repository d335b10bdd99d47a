package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/limaJavier/coursescheduler/internal/config"
	"github.com/limaJavier/coursescheduler/internal/csvio"
	"github.com/limaJavier/coursescheduler/internal/gateway"
	"github.com/limaJavier/coursescheduler/internal/planner"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/spf13/cobra"
)

const (
	jsonFormat     = "json"
	csvFormat      = "csv"
	envelopeFormat = "envelope"
)

var generateFlags struct {
	courses  string
	file     string
	strategy string
	format   string
	out      string
}

var generateCmd = &cobra.Command{
	Use:   "generate [COURSE...]",
	Short: "Generate every conflict-free schedule of the requested courses",
	Example: `  coursescheduler generate --courses "CPSC 221,MATH 100"
  coursescheduler generate "CPSC 221" "MATH 100" --format csv --out schedules.csv`,
	RunE: runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVar(&generateFlags.courses, "courses", "", `comma separated courses, e.g. "CPSC 221,MATH 100"; they are requested before any positional COURSE`)
	flags.StringVar(&generateFlags.file, "file", "", "course database file; overrides the configured source")
	flags.StringVar(&generateFlags.strategy, "strategy", "", fmt.Sprintf("generation strategy, one of %v; defaults to the configured one", model.Strategies()))
	flags.StringVar(&generateFlags.format, "format", jsonFormat, `output format: "json", "csv" or "envelope"`)
	flags.StringVar(&generateFlags.out, "out", "", "path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Request order decides output order: --courses first, then positional arguments
	courses := append(planner.ParseCourses(generateFlags.courses), args...)
	if len(courses) == 0 {
		return fmt.Errorf("at least one course must be specified")
	}
	format := strings.ToLower(generateFlags.format)
	if format != jsonFormat && format != csvFormat && format != envelopeFormat {
		return fmt.Errorf("%v is not a valid format", format)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateFlags.file != "" {
		cfg.Database.Source = config.FileSource
		cfg.Database.Path = generateFlags.file
	}
	strategy := cfg.Scheduler.Strategy
	if generateFlags.strategy != "" {
		strategy = strings.ToLower(generateFlags.strategy)
	}
	log := newLogger(cfg, "generate")

	database, err := loadDatabase(cmd.Context(), cfg.Database, log)
	if err != nil {
		return err
	}
	plan, err := planner.New(database, strategy, log, nil)
	if err != nil {
		return err
	}

	schedules, err := plan.Schedules(cmd.Context(), courses)
	var output []byte
	if format == envelopeFormat {
		// Errors are part of the envelope
		output, err = renderEnvelope(schedules, err)
	} else if err != nil {
		return err
	} else {
		output, err = render(format, schedules)
	}
	if err != nil {
		return err
	}

	if generateFlags.out == "" {
		_, err = cmd.OutOrStdout().Write(output)
		return err
	}
	if err := os.WriteFile(generateFlags.out, output, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	log.Infof("wrote %d schedules to %v", len(schedules), generateFlags.out)
	return nil
}

func render(format string, schedules []model.Schedule) ([]byte, error) {
	switch format {
	case csvFormat:
		var buffer bytes.Buffer
		if err := csvio.ExportSchedules(&buffer, schedules); err != nil {
			return nil, err
		}
		return buffer.Bytes(), nil
	default:
		output, err := json.Marshal(model.SerializeAll(schedules))
		if err != nil {
			return nil, fmt.Errorf("an error occurred while building output json: %w", err)
		}
		return append(output, '\n'), nil
	}
}

func renderEnvelope(schedules []model.Schedule, planErr error) ([]byte, error) {
	response := gateway.JSONResponse(200, model.SerializeAll(schedules))
	if planErr != nil {
		response = gateway.ErrorResponse(planErr)
	}
	output, err := json.Marshal(response)
	if err != nil {
		return nil, err
	}
	return append(output, '\n'), nil
}
