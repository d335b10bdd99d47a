package main

import (
	"fmt"

	"github.com/limaJavier/coursescheduler/internal/config"
	"github.com/limaJavier/coursescheduler/pkg/coursedb"
	"github.com/spf13/cobra"
)

var fetchOut string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the remote course database into a local file",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "destination file; defaults to the configured cache path")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg, "fetch")

	cfg.Database.Source = config.CachedSource
	if fetchOut != "" {
		cfg.Database.CachePath = fetchOut
	}
	source, err := coursedb.NewSource(cfg.Database, log)
	if err != nil {
		return err
	}
	cached := source.(*coursedb.CachedSource)
	if err := cached.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("fetch course database: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cached.Path)
	return err
}
