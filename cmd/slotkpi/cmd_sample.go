package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/slotops/slot-kpi-monitor/pkg/monitor"
)

func newSampleCommand(rootConfig *rootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Render the built-in sample data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCmd(doSample(rootConfig))
		},
	}
	return cmd
}

func doSample(rootConfig *rootConfig) error {
	store, err := openStore(rootConfig)
	if err != nil {
		return err
	}
	store.ReplaceAll(monitor.SampleRows())

	records := store.Records()
	renderGrid(os.Stdout, records)
	renderSummary(os.Stdout, monitor.Summarize(records))
	return nil
}
