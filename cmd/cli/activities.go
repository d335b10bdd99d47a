package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List the activity types found in the course database",
	RunE:  runActivities,
}

func init() {
	rootCmd.AddCommand(activitiesCmd)
}

func runActivities(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, err := loadDatabase(cmd.Context(), cfg.Database, newLogger(cfg, "activities"))
	if err != nil {
		return err
	}
	for _, activity := range database.ActivityTypes() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), activity); err != nil {
			return err
		}
	}
	return nil
}
