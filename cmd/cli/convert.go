package main

import (
	"fmt"
	"strings"

	"github.com/limaJavier/coursescheduler/internal/csvio"
	"github.com/spf13/cobra"
)

var convertFormat string

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert a CSV export of schedules back to JSON or to the gateway envelope",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFormat, "format", jsonFormat, `output format: "json" or "envelope"`)
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	schedules, err := csvio.LoadSchedulesFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read schedules: %w", err)
	}

	var output []byte
	switch strings.ToLower(convertFormat) {
	case jsonFormat:
		output, err = render(jsonFormat, schedules)
	case envelopeFormat:
		output, err = renderEnvelope(schedules, nil)
	default:
		return fmt.Errorf("%v is not a valid format", convertFormat)
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(output)
	return err
}
