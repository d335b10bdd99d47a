package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/limaJavier/coursescheduler/pkg/catalog"
	"github.com/spf13/cobra"
)

var seatsCmd = &cobra.Command{
	Use:     "seats SECTION...",
	Short:   "Check whether sections still have free seats",
	Example: `  coursescheduler seats "STAT 251 L1B" "CPSC 320 921"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSeats,
}

func init() {
	rootCmd.AddCommand(seatsCmd)
}

func runSeats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	checker := &catalog.SeatChecker{
		BaseURL: cfg.Catalog.BaseURL,
		Year:    cfg.Database.Year,
		Session: cfg.Database.Session,
		Client:  &http.Client{Timeout: time.Duration(cfg.Database.TimeoutSeconds) * time.Second},
		Log:     newLogger(cfg, "seats"),
	}

	for _, section := range args {
		full, err := checker.IsFull(cmd.Context(), section)
		if err != nil {
			return err
		}
		status := "has a free spot"
		if full {
			status = "is FULL"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%v %v\n", section, status); err != nil {
			return err
		}
	}
	return nil
}
