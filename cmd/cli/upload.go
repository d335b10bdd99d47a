package main

import (
	"fmt"

	"github.com/limaJavier/coursescheduler/pkg/coursedb"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Publish a local course database to the remote store, one department at a time",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg, "upload")

	database, err := model.DatabaseFromJson(args[0])
	if err != nil {
		return err
	}
	if err := coursedb.NewUploader(cfg.Database, log).Upload(cmd.Context(), database); err != nil {
		return fmt.Errorf("upload course database: %w", err)
	}
	log.Infof("uploaded %d departments", len(database))
	return nil
}
